package models

type SubscriptionStatus string
type BillingCycle string
type PaymentStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	// Reserved for a gateway-webhook reconciliation flow; nothing
	// transitions into it yet.
	SubscriptionStatusPastDue SubscriptionStatus = "past_due"

	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Button styles selectable on the public profile.
const (
	ButtonStyleRounded = "rounded"
	ButtonStyleSquare  = "square"
	ButtonStylePill    = "pill"
)
