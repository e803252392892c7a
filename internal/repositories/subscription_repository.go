package repositories

import (
	"errors"
	"time"

	"linkbio_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPlanNotFound         = errors.New("plan not found")
	ErrNoActiveSubscription = errors.New("no active subscription")
)

// ActivationData carries everything the subscription swap needs so the
// whole cancel-old / insert-subscription / insert-payment sequence can
// run as one unit of work.
type ActivationData struct {
	UserID       string
	PlanID       string
	BillingCycle models.BillingCycle
	PeriodStart  time.Time
	PeriodEnd    time.Time
	OrderID      string
	PaymentID    string
	Amount       int
}

type SubscriptionRepository interface {
	FindPlans() ([]models.Plan, error)
	FindPlanByID(id string) (*models.Plan, error)
	FindPlanBySlug(slug string) (*models.Plan, error)
	CreatePlan(plan *models.Plan) error
	CountPlans() (int64, error)

	// FindActiveByUser returns ErrNoActiveSubscription when the user
	// has no subscription row with status=active.
	FindActiveByUser(userID string) (*models.Subscription, error)
	// Activate cancels any existing active subscription, inserts the
	// new active one and records the completed payment — all inside a
	// single transaction.
	Activate(data ActivationData) (*models.Subscription, error)
	// Cancel flips the active subscription to cancelled with a
	// timestamp; billing-period dates are left untouched.
	Cancel(userID string) error
}

type SubscriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &SubscriptionRepositoryImpl{db: db}
}

func (r *SubscriptionRepositoryImpl) FindPlans() ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Preload("Features", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Order("price_monthly ASC").
		Find(&plans).Error
	return plans, err
}

func (r *SubscriptionRepositoryImpl) FindPlanByID(id string) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.Preload("Features", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *SubscriptionRepositoryImpl) FindPlanBySlug(slug string) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.First(&plan, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *SubscriptionRepositoryImpl) CreatePlan(plan *models.Plan) error {
	return r.db.Create(plan).Error
}

func (r *SubscriptionRepositoryImpl) CountPlans() (int64, error) {
	var count int64
	err := r.db.Model(&models.Plan{}).Count(&count).Error
	return count, err
}

func (r *SubscriptionRepositoryImpl) FindActiveByUser(userID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.Preload("Plan").
		First(&sub, "user_id = ? AND status = ?", userID, models.SubscriptionStatusActive).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveSubscription
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) Activate(data ActivationData) (*models.Subscription, error) {
	now := time.Now()
	sub := &models.Subscription{
		UserID:             data.UserID,
		PlanID:             data.PlanID,
		Status:             models.SubscriptionStatusActive,
		BillingCycle:       data.BillingCycle,
		CurrentPeriodStart: data.PeriodStart,
		CurrentPeriodEnd:   data.PeriodEnd,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Subscription{}).
			Where("user_id = ? AND status = ?", data.UserID, models.SubscriptionStatusActive).
			Updates(map[string]interface{}{
				"status":       models.SubscriptionStatusCancelled,
				"cancelled_at": now,
			}).Error; err != nil {
			return err
		}

		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		payment := &models.Payment{
			SubscriptionID:    sub.ID,
			RazorpayOrderID:   data.OrderID,
			RazorpayPaymentID: data.PaymentID,
			Amount:            data.Amount,
			Status:            models.PaymentStatusCompleted,
			PaidAt:            &now,
		}
		return tx.Create(payment).Error
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *SubscriptionRepositoryImpl) Cancel(userID string) error {
	now := time.Now()
	result := r.db.Model(&models.Subscription{}).
		Where("user_id = ? AND status = ?", userID, models.SubscriptionStatusActive).
		Updates(map[string]interface{}{
			"status":       models.SubscriptionStatusCancelled,
			"cancelled_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoActiveSubscription
	}
	return nil
}
