package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"linkbio_backend/internal/config"
	"linkbio_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// RazorpayService verifies gateway callbacks and builds checkout order
// descriptors. It never talks to the gateway itself; the charge is
// authorized client-side and only the callback signature is checked
// here.
type RazorpayService struct {
	KeyID     string
	KeySecret string
	Currency  string
}

func NewRazorpayService(cfg *config.Config) *RazorpayService {
	return &RazorpayService{
		KeyID:     cfg.Razorpay.KeyID,
		KeySecret: cfg.Razorpay.KeySecret,
		Currency:  cfg.Razorpay.Currency,
	}
}

// NewOrderID generates an opaque order identifier for a checkout.
func (r *RazorpayService) NewOrderID() string {
	return "order_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// VerifySignature recomputes the HMAC-SHA256 of "orderID|paymentID"
// with the merchant secret and compares it against the client-supplied
// signature in constant time. A missing secret fails closed — it must
// never let a payment through.
func (r *RazorpayService) VerifySignature(orderID, paymentID, signature string) error {
	if r.KeySecret == "" {
		return apperrors.ErrPaymentConfigMissing
	}

	mac := hmac.New(sha256.New, []byte(r.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return apperrors.ErrInvalidPaymentSignature
	}
	return nil
}
