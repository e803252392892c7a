package services

import (
	"time"

	"linkbio_backend/internal/models"
	"linkbio_backend/internal/repositories"
	"linkbio_backend/internal/services/dto"
	"linkbio_backend/pkg/apperrors"
)

// Free-tier defaults for users without an active subscription row.
const (
	FreeLinkLimit        = 5
	FreeAnalyticsEnabled = false
	FreePlanSlug         = "free"
)

// EntitlementResolver is the narrow view the link and analytics
// services need; SubscriptionService implements it.
type EntitlementResolver interface {
	ResolveEntitlements(userID string) (dto.Entitlements, error)
}

type SubscriptionService interface {
	EntitlementResolver

	GetPlans() ([]models.Plan, error)
	GetCurrentSubscription(userID string) (*dto.CurrentSubscription, error)
	GetLinkLimits(userID string) (*dto.LinkLimits, error)
	HasAnalyticsAccess(userID string) (bool, error)
	CreateCheckout(userID string, req *dto.CheckoutRequest) (*dto.CheckoutOrder, error)
	VerifyPayment(userID string, req *dto.VerifyPaymentRequest) (*models.Subscription, error)
	CancelSubscription(userID string) error
}

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	linkRepo         repositories.LinkRepository
	razorpay         *RazorpayService
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	linkRepo repositories.LinkRepository,
	razorpay *RazorpayService,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		linkRepo:         linkRepo,
		razorpay:         razorpay,
	}
}

func (s *subscriptionService) GetPlans() ([]models.Plan, error) {
	return s.subscriptionRepo.FindPlans()
}

// ResolveEntitlements derives the plan capabilities fresh on every
// call; a user without an active subscription is on the implicit free
// plan.
func (s *subscriptionService) ResolveEntitlements(userID string) (dto.Entitlements, error) {
	sub, err := s.subscriptionRepo.FindActiveByUser(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNoActiveSubscription) {
			return dto.Entitlements{
				LinkLimit:        FreeLinkLimit,
				AnalyticsEnabled: FreeAnalyticsEnabled,
			}, nil
		}
		return dto.Entitlements{}, err
	}

	return dto.Entitlements{
		LinkLimit:        sub.Plan.LinkLimit,
		AnalyticsEnabled: sub.Plan.AnalyticsEnabled,
	}, nil
}

func (s *subscriptionService) GetCurrentSubscription(userID string) (*dto.CurrentSubscription, error) {
	sub, err := s.subscriptionRepo.FindActiveByUser(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNoActiveSubscription) {
			return &dto.CurrentSubscription{
				Subscription: nil,
				Plan: dto.PlanSummary{
					Name:             "Free",
					Slug:             FreePlanSlug,
					LinkLimit:        FreeLinkLimit,
					AnalyticsEnabled: FreeAnalyticsEnabled,
				},
				IsFreePlan: true,
			}, nil
		}
		return nil, err
	}

	return &dto.CurrentSubscription{
		Subscription: sub,
		Plan: dto.PlanSummary{
			Name:             sub.Plan.Name,
			Slug:             sub.Plan.Slug,
			LinkLimit:        sub.Plan.LinkLimit,
			AnalyticsEnabled: sub.Plan.AnalyticsEnabled,
		},
		IsFreePlan: sub.Plan.Slug == FreePlanSlug,
	}, nil
}

func (s *subscriptionService) GetLinkLimits(userID string) (*dto.LinkLimits, error) {
	ents, err := s.ResolveEntitlements(userID)
	if err != nil {
		return nil, err
	}

	count, err := s.linkRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	isUnlimited := ents.LinkLimit == models.UnlimitedLinks
	return &dto.LinkLimits{
		CurrentCount:  count,
		Limit:         ents.LinkLimit,
		CanCreateMore: isUnlimited || count < int64(ents.LinkLimit),
		IsUnlimited:   isUnlimited,
	}, nil
}

func (s *subscriptionService) HasAnalyticsAccess(userID string) (bool, error) {
	ents, err := s.ResolveEntitlements(userID)
	if err != nil {
		return false, err
	}
	return ents.AnalyticsEnabled, nil
}

// CreateCheckout is read-only against the plan catalog; the returned
// descriptor is handed to the gateway widget client-side.
func (s *subscriptionService) CreateCheckout(userID string, req *dto.CheckoutRequest) (*dto.CheckoutOrder, error) {
	plan, err := s.subscriptionRepo.FindPlanByID(req.PlanID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, err
	}

	if plan.Slug == FreePlanSlug {
		return nil, apperrors.ErrFreePlanCheckout
	}

	amount := amountForCycle(plan, models.BillingCycle(req.BillingCycle))

	return &dto.CheckoutOrder{
		OrderID:      s.razorpay.NewOrderID(),
		Amount:       amount,
		Currency:     s.razorpay.Currency,
		PlanID:       plan.ID,
		PlanName:     plan.Name,
		BillingCycle: req.BillingCycle,
		KeyID:        s.razorpay.KeyID,
	}, nil
}

// VerifyPayment checks the gateway signature and, on success, swaps
// the subscription: cancel-old, insert-new, record-payment. The swap
// runs as one transaction in the repository; a tampered signature
// performs zero writes.
func (s *subscriptionService) VerifyPayment(userID string, req *dto.VerifyPaymentRequest) (*models.Subscription, error) {
	if err := s.razorpay.VerifySignature(req.OrderID, req.PaymentID, req.Signature); err != nil {
		return nil, err
	}

	plan, err := s.subscriptionRepo.FindPlanByID(req.PlanID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, err
	}

	cycle := models.BillingCycle(req.BillingCycle)
	now := time.Now()
	var periodEnd time.Time
	if cycle == models.BillingCycleYearly {
		periodEnd = now.AddDate(1, 0, 0)
	} else {
		periodEnd = now.AddDate(0, 1, 0)
	}

	return s.subscriptionRepo.Activate(repositories.ActivationData{
		UserID:       userID,
		PlanID:       plan.ID,
		BillingCycle: cycle,
		PeriodStart:  now,
		PeriodEnd:    periodEnd,
		OrderID:      req.OrderID,
		PaymentID:    req.PaymentID,
		Amount:       amountForCycle(plan, cycle),
	})
}

// CancelSubscription flips the status immediately. Billing-period
// dates stay untouched and read paths treat any non-active status as
// unentitled right away.
func (s *subscriptionService) CancelSubscription(userID string) error {
	err := s.subscriptionRepo.Cancel(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNoActiveSubscription) {
			return apperrors.ErrNoActiveSubscription
		}
		return err
	}
	return nil
}

func amountForCycle(plan *models.Plan, cycle models.BillingCycle) int {
	if cycle == models.BillingCycleYearly {
		return plan.PriceYearly
	}
	return plan.PriceMonthly
}
