package apperrors

import (
	"fmt"
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate-row error into a 409 AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation is the generic 400 factory for operations that
// are not allowed in the current state.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Links ---

// ErrLinkNotFound covers both a missing link id and a link owned by
// someone else. The repository query is still ownership-filtered; the
// explicit error just makes the outcome observable.
var ErrLinkNotFound = New(
	CodeNotFound,
	"links",
	"Link not found",
	http.StatusNotFound,
)

// ErrLinkLimitReached carries the numeric limit so the client can
// render an upgrade prompt.
func ErrLinkLimitReached(limit int) *AppError {
	return New(
		CodeLimitExceeded,
		"links",
		fmt.Sprintf("Link limit of %d reached. Upgrade your plan to add more links.", limit),
		http.StatusForbidden,
	).WithDetails(map[string]int{"limit": limit})
}

// --- Analytics ---

var ErrAnalyticsNotIncluded = New(
	CodeLimitExceeded,
	"analytics",
	"Analytics is not included in your current plan",
	http.StatusForbidden,
)

// --- Subscriptions & Payments ---

var ErrPlanNotFound = New(
	CodeNotFound,
	"subscription",
	"Plan not found",
	http.StatusNotFound,
)

var ErrFreePlanCheckout = New(
	CodeInvalidOperation,
	"subscription",
	"Cannot checkout the free plan",
	http.StatusBadRequest,
)

var ErrNoActiveSubscription = New(
	CodeNotFound,
	"subscription",
	"No active subscription found",
	http.StatusNotFound,
)

var ErrInvalidPaymentSignature = New(
	CodeValidationFailed,
	"payment",
	"Invalid payment signature",
	http.StatusBadRequest,
)

// ErrPaymentConfigMissing is raised when the gateway secret is absent.
// A missing secret must never let a payment through.
var ErrPaymentConfigMissing = New(
	CodeInternalError,
	"payment",
	"Payment gateway configuration is incomplete",
	http.StatusInternalServerError,
)

// --- Themes ---

var ErrThemeNotFound = New(
	CodeNotFound,
	"themes",
	"Theme not found",
	http.StatusNotFound,
)

// --- Users & Auth ---

var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

var ErrUsernameTaken = New(
	CodeConflict,
	"users",
	"Username is already taken",
	http.StatusConflict,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
