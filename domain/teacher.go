package domain

import (
	"context"
	"time"
)

type Teacher struct {
	TeacherID      int        `gorm:"primaryKey;autoIncrement" json:"teacher_id"`
	UserID         int        `gorm:"not null" json:"user_id"`
	User           User       `gorm:"references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user" valid:"-"`
	CenterID       int        `gorm:"not null" json:"center_id"`
	Center         Center     `gorm:"references:CenterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"center" valid:"-"`
	Specialization string     `gorm:"type:varchar(100)" json:"specialization"`
	Bio            string     `gorm:"type:text" json:"bio"`
	HireDate       time.Time  `gorm:"type:date" json:"hire_date"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      *time.Time `gorm:"index" json:"deleted_at"`
}

type TeacherDashboard struct {
	Teacher      Teacher      `json:"teacher"`
	TodayClasses []Schedule   `json:"today_classes"`
	Stats        TeacherStats `json:"stats"`
}

type TeacherStats struct {
	TodayClasses    int   `json:"today_classes"`
	Students        int64 `json:"students"`
	AssignedClasses int   `json:"assigned_classes"`
}

// DaySchedules is one weekday column of the teacher's weekly view.
type DaySchedules struct {
	DayName   string     `json:"day_name"`
	Schedules []Schedule `json:"schedules"`
}

// ClassRoster is one class slot with its active students.
type ClassRoster struct {
	Schedule Schedule     `json:"schedule"`
	Label    string       `json:"label"`
	Students []Enrollment `json:"students"`
}

type AttendancePayload struct {
	EnrollmentID int    `json:"enrollment_id" form:"enrollment_id" valid:"required~Enrollment is required"`
	ClassDate    string `json:"class_date" form:"class_date" valid:"required~Class date is required"`
	Status       string `json:"status" form:"status" valid:"required~Status is required,in(present|absent|late|excused)~Invalid attendance status"`
	Notes        string `json:"notes" form:"notes" valid:"-"`
}

type TeacherRepo interface {
	GetDashboard(ctx context.Context, userID int) (*TeacherDashboard, error)
	GetWeeklySchedule(ctx context.Context, userID int) (*[]DaySchedules, error)
	GetRoster(ctx context.Context, userID int) (*[]ClassRoster, error)
	RecordAttendance(ctx context.Context, userID int, payload *AttendancePayload) (*Attendance, error)
	GetAttendanceLog(ctx context.Context, userID, scheduleID int, classDate string) (*[]Attendance, error)
}

type TeacherUseCase interface {
	GetDashboard(ctx context.Context, userID int) (*TeacherDashboard, error)
	GetWeeklySchedule(ctx context.Context, userID int) (*[]DaySchedules, error)
	GetRoster(ctx context.Context, userID int) (*[]ClassRoster, error)
	RecordAttendance(ctx context.Context, userID int, payload *AttendancePayload) (*Attendance, error)
	GetAttendanceLog(ctx context.Context, userID, scheduleID int, classDate string) (*[]Attendance, error)
}
