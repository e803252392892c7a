package dto

import "linkbio_backend/internal/models"

// Entitlements are the plan-derived capabilities consulted by the link
// and analytics services. LinkLimit uses -1 as the unlimited sentinel.
type Entitlements struct {
	LinkLimit        int  `json:"link_limit"`
	AnalyticsEnabled bool `json:"analytics_enabled"`
}

type CheckoutRequest struct {
	PlanID       string `json:"plan_id" validate:"required"`
	BillingCycle string `json:"billing_cycle" validate:"required,is-billing-cycle"`
}

// CheckoutOrder is the opaque order descriptor handed to the payment
// gateway widget. No local state changes when it is created.
type CheckoutOrder struct {
	OrderID      string `json:"order_id"`
	Amount       int    `json:"amount"`
	Currency     string `json:"currency"`
	PlanID       string `json:"plan_id"`
	PlanName     string `json:"plan_name"`
	BillingCycle string `json:"billing_cycle"`
	KeyID        string `json:"key_id"`
}

type VerifyPaymentRequest struct {
	OrderID      string `json:"order_id" validate:"required"`
	PaymentID    string `json:"payment_id" validate:"required"`
	Signature    string `json:"signature" validate:"required"`
	PlanID       string `json:"plan_id" validate:"required"`
	BillingCycle string `json:"billing_cycle" validate:"required,is-billing-cycle"`
}

// PlanSummary mirrors the catalog fields clients gate features on.
type PlanSummary struct {
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	LinkLimit        int    `json:"link_limit"`
	AnalyticsEnabled bool   `json:"analytics_enabled"`
}

type CurrentSubscription struct {
	Subscription *models.Subscription `json:"subscription"`
	Plan         PlanSummary          `json:"plan"`
	IsFreePlan   bool                 `json:"is_free_plan"`
}
