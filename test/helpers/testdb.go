package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"linkbio_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the raw password when needed.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !isBcryptHash(user.PasswordHash) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		user.PasswordHash = string(hashed)
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ERROR: failed to create user %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

func isBcryptHash(s string) bool {
	return len(s) > 4 && s[0] == '$' && s[1] == '2'
}

// CreateAndLoginUser creates a user and logs them in via the API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, db *gorm.DB, name, email, password string) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password, // raw; hashed by CreateUser
	}
	err := CreateUser(t, db, user)
	assert.NoError(t, err, "Creating a test user must not fail")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Login must succeed. Response: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Failed to parse login JSON")
	assert.NotEmpty(t, loginResponse.Token, "Token must not be empty")

	return loginResponse.Token, user
}

// CreateAndLoginCreator creates a user with a unique email and a
// claimed username, ready to own links.
func CreateAndLoginCreator(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	suffix := time.Now().UnixNano()
	email := fmt.Sprintf("creator_%d@test.com", suffix)
	token, user := CreateAndLoginUser(t, ts, db, "Test Creator", email, "password123")

	username := fmt.Sprintf("creator_%d", suffix)
	err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("username", username).Error
	assert.NoError(t, err, "Failed to claim test username")
	user.Username = &username

	return token, user
}

// CreateTestLink inserts a link directly.
func CreateTestLink(t *testing.T, db *gorm.DB, userID, title string, order int) models.Link {
	link := models.Link{
		UserID:  userID,
		Title:   title,
		URL:     "https://example.com/" + title,
		Visible: true,
		Order:   order,
	}
	if err := db.Create(&link).Error; err != nil {
		t.Fatalf("Failed to create test link: %v", err)
	}
	return link
}

// ActivateSubscription inserts an active subscription for the plan
// slug, bypassing the payment flow.
func ActivateSubscription(t *testing.T, db *gorm.DB, userID, planSlug string) models.Subscription {
	var plan models.Plan
	if err := db.First(&plan, "slug = ?", planSlug).Error; err != nil {
		t.Fatalf("Failed to look up plan %q: %v", planSlug, err)
	}

	now := time.Now()
	sub := models.Subscription{
		UserID:             userID,
		PlanID:             plan.ID,
		Status:             models.SubscriptionStatusActive,
		BillingCycle:       models.BillingCycleMonthly,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   now.AddDate(0, 1, 0),
	}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("Failed to create test subscription: %v", err)
	}
	return sub
}
