package errs

import "errors"

// Domain-specific sentinel errors shared by the command and query layers
var (
	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")

	// Badge errors
	ErrBadgeNotFound     = errors.New("badge not found")
	ErrBadgeAlreadyOwned = errors.New("badge already owned")

	// Partner errors
	ErrPartnerNotFound = errors.New("partner not found")

	// Coupon errors
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrInsufficientBadges  = errors.New("insufficient badges")
	ErrCouponCodeCollision = errors.New("coupon code collision")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
