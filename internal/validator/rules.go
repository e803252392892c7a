package validator

import (
	"log"
	"regexp"

	"linkbio_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	usernameRe = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// registerCustomRules installs all custom validation tags on the
// validator instance. Registration failure is a startup error.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-hex-color': 6-digit hex with leading '#', as stored on
	// custom themes.
	mustRegister("is-hex-color", validateHexColor)

	// 'is-username': public profile slug charset.
	mustRegister("is-username", validateUsername)

	// 'is-billing-cycle': monthly or yearly.
	mustRegister("is-billing-cycle", validateBillingCycle)

	// 'is-button-style': public profile button shape.
	mustRegister("is-button-style", validateButtonStyle)
}

func validateHexColor(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empties
	}
	return hexColorRe.MatchString(value)
}

func validateUsername(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return usernameRe.MatchString(value)
}

func validateBillingCycle(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.BillingCycle(value) {
	case models.BillingCycleMonthly, models.BillingCycleYearly:
		return true
	default:
		return false
	}
}

func validateButtonStyle(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case models.ButtonStyleRounded, models.ButtonStyleSquare, models.ButtonStylePill:
		return true
	default:
		return false
	}
}
