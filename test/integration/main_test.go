package integration_test

import (
	"log"
	"os"
	"sync"
	"testing"

	"linkbio_backend/internal/models"
	"linkbio_backend/test/helpers"

	"gorm.io/gorm"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// razorpayTestSecret signs payment callbacks in subscription tests.
const razorpayTestSecret = "integration_test_secret"

// seedPlans inserts the catalog the tests rely on.
func seedPlans(t *testing.T, db *gorm.DB) {
	var count int64
	db.Model(&models.Plan{}).Count(&count)
	if count > 0 {
		return
	}

	plans := []models.Plan{
		{Name: "Free", Slug: "free", LinkLimit: 5},
		{Name: "Starter", Slug: "starter", PriceMonthly: 9900, PriceYearly: 99900, LinkLimit: 25},
		{Name: "Pro", Slug: "pro", PriceMonthly: 29900, PriceYearly: 299900, LinkLimit: models.UnlimitedLinks, AnalyticsEnabled: true},
	}
	for i := range plans {
		if err := db.Create(&plans[i]).Error; err != nil {
			t.Fatalf("Failed to seed plan %q: %v", plans[i].Slug, err)
		}
	}
}

// GetTestServer returns the shared test server, creating it on first
// use. Tests are skipped entirely when no test database is configured.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL is not set; skipping integration tests")
	}

	serverOnce.Do(func() {
		os.Setenv("SERVER_ENV", "test")
		os.Setenv("JWT_SECRET", "integration_test_jwt_secret")
		os.Setenv("RAZORPAY_KEY_ID", "rzp_test_integration")
		os.Setenv("RAZORPAY_KEY_SECRET", razorpayTestSecret)

		log.Println("--- [GetTestServer] Initializing test server... ---")
		globalTestServer = helpers.NewTestServer(t)

		seedPlans(t, globalTestServer.DB)
		log.Println("--- [GetTestServer] Test server ready ---")
	})
	return globalTestServer
}

// CreateCreator is shorthand for a logged-in user with a username.
func CreateCreator(t *testing.T, ts *helpers.TestServer) (string, *models.User) {
	return helpers.CreateAndLoginCreator(t, ts, ts.DB)
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		log.Println("--- [TestMain] Cleaning up... ---")
		globalTestServer.Close()
	}

	os.Exit(code)
}
