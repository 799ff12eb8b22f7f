package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	EnrollmentActive    = "active"
	EnrollmentPending   = "pending"
	EnrollmentPaused    = "paused"
	EnrollmentCancelled = "cancelled"
)

// Eligibility failures. Each one carries the exact reason surfaced to
// the caller; handlers match them with errors.Is.
var (
	ErrChildNotFound    = errors.New("child not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrAlreadyEnrolled  = errors.New("child is already enrolled in this class")
	ErrTooYoung         = errors.New("child is too young for this program")
	ErrTooOld           = errors.New("child is too old for this program")
	ErrClassFull        = errors.New("class is full")
)

type Enrollment struct {
	EnrollmentID   int        `gorm:"primaryKey;autoIncrement" json:"enrollment_id"`
	ChildID        int        `gorm:"not null" json:"child_id"`
	Child          Child      `gorm:"references:ChildID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"child" valid:"-"`
	ScheduleID     int        `gorm:"not null" json:"schedule_id"`
	Schedule       Schedule   `gorm:"references:ScheduleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"schedule" valid:"-"`
	EnrollmentDate time.Time  `gorm:"type:date" json:"enrollment_date"`
	Status         string     `gorm:"type:enrollment_status_enum;default:'active'" json:"status"`
	PaymentMethod  string     `gorm:"type:varchar(50)" json:"payment_method"`
	Notes          string     `gorm:"type:text" json:"notes"`
	ApprovedBy     *int       `json:"approved_by"`
	ApprovedAt     *time.Time `json:"approved_at"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      *time.Time `gorm:"index" json:"deleted_at"`
}

// EligibilitySnapshot is everything the enrollment checks read. The
// caller loads it from one consistent view of the store; the checks
// themselves never touch the database.
type EligibilitySnapshot struct {
	Child           *Child
	Program         *Program
	Schedule        *Schedule
	AlreadyEnrolled bool  // child holds an active enrollment on the schedule
	ActiveCount     int64 // active enrollments currently on the schedule
	Today           time.Time
}

// CheckEligibility runs the enrollment admission pipeline in its fixed
// order: duplicate, age bounds, capacity. The first failure wins.
// Cancelled, paused, and pending enrollments count toward neither the
// duplicate check nor capacity, so AlreadyEnrolled and ActiveCount must
// be computed over active rows only.
func CheckEligibility(snap *EligibilitySnapshot) error {
	if snap.Child == nil {
		return ErrChildNotFound
	}
	if snap.Schedule == nil || snap.Program == nil {
		return ErrScheduleNotFound
	}

	if snap.AlreadyEnrolled {
		return ErrAlreadyEnrolled
	}

	if snap.Child.BirthDate != nil {
		age := AgeOn(*snap.Child.BirthDate, snap.Today)
		if snap.Program.MinAge != nil && age < *snap.Program.MinAge {
			return fmt.Errorf("%w (minimum age: %d)", ErrTooYoung, *snap.Program.MinAge)
		}
		if snap.Program.MaxAge != nil && age > *snap.Program.MaxAge {
			return fmt.Errorf("%w (maximum age: %d)", ErrTooOld, *snap.Program.MaxAge)
		}
	}

	if snap.ActiveCount >= int64(snap.Schedule.MaxStudents) {
		return ErrClassFull
	}

	return nil
}

// IsEligibilityError reports whether err is one of the enrollment
// admission failures, as opposed to an unexpected persistence error.
func IsEligibilityError(err error) bool {
	return errors.Is(err, ErrChildNotFound) ||
		errors.Is(err, ErrScheduleNotFound) ||
		errors.Is(err, ErrAlreadyEnrolled) ||
		errors.Is(err, ErrTooYoung) ||
		errors.Is(err, ErrTooOld) ||
		errors.Is(err, ErrClassFull)
}
