package domain

import "errors"

var (
	ErrDuplicateReference = errors.New("payment reference already used")
	ErrVerificationFailed = errors.New("payment verification failed")
	ErrNotificationFailed = errors.New("receipt could not be sent")
	ErrReferenceTooShort  = errors.New("payment reference too short")
	ErrMissingField       = errors.New("missing required field")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrOrderNotFound      = errors.New("order not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotEnrolled        = errors.New("not enrolled in course")
	ErrInvalidProgress    = errors.New("progress must be between 0 and 100")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrCourseNameRequired = errors.New("course name required")
	ErrInvalidID          = errors.New("invalid id")
)
