package domain

import "time"

// Enrollment grants a user access to a purchased course.
// Progress is a completion percentage in [0, 100].
type Enrollment struct {
	UserID       string
	CourseName   string
	EnrolledAt   time.Time
	Progress     int
	LastAccessed *time.Time
}
