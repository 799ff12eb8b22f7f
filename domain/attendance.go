package domain

import (
	"time"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceExcused = "excused"
)

// Attendance is one per-class-date status row per enrollment. Pure
// logging; the teacher upserts the row for (enrollment, date).
type Attendance struct {
	AttendanceID int        `gorm:"primaryKey;autoIncrement" json:"attendance_id"`
	EnrollmentID int        `gorm:"not null;index:idx_attendance_slot" json:"enrollment_id"`
	Enrollment   Enrollment `gorm:"references:EnrollmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"enrollment" valid:"-"`
	ClassDate    time.Time  `gorm:"type:date;not null;index:idx_attendance_slot" json:"class_date"`
	Status       string     `gorm:"type:attendance_status_enum;default:'present'" json:"status"`
	Notes        string     `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    *time.Time `gorm:"index" json:"deleted_at"`
}
