package domain

import (
	"context"
	"time"
)

type Center struct {
	CenterID     int        `gorm:"primaryKey;autoIncrement" json:"center_id"`
	UserID       int        `gorm:"not null" json:"user_id"`
	User         User       `gorm:"references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user" valid:"-"`
	CenterName   string     `gorm:"type:varchar(150);not null;" json:"center_name" valid:"required~Center name is required"`
	Description  string     `gorm:"type:text" json:"description"`
	Address      string     `gorm:"type:varchar(200);not null;" json:"address" valid:"required~Address is required"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	PhotoURL     string     `gorm:"type:varchar(255)" json:"photo_url"`
	Website      string     `gorm:"type:varchar(255)" json:"website"`
	ScheduleInfo string     `gorm:"type:text" json:"schedule_info"`
	InviteCode   string     `gorm:"type:varchar(8);unique" json:"invite_code"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    *time.Time `gorm:"index" json:"deleted_at"`
}

// Geocoded reports whether the center can be placed on the map.
func (c *Center) Geocoded() bool {
	return c.Latitude != nil && c.Longitude != nil
}

type CenterProfilePayload struct {
	CenterName   string `json:"center_name" form:"center_name" valid:"required~Center name is required"`
	Description  string `json:"description" form:"description" valid:"-"`
	Address      string `json:"address" form:"address" valid:"required~Address is required"`
	Website      string `json:"website" form:"website" valid:"-"`
	ScheduleInfo string `json:"schedule_info" form:"schedule_info" valid:"-"`
	Phone        string `json:"phone" form:"phone" valid:"-"`
	PhotoURL     string `json:"-" form:"-" valid:"-"`
}

type CenterDashboard struct {
	Center          Center     `json:"center"`
	Stats           StatsBlock `json:"stats"`
	RecentSchedules []Schedule `json:"recent_schedules"`
}

type StatsBlock struct {
	Programs int64 `json:"programs"`
	Teachers int64 `json:"teachers"`
	Students int64 `json:"students"`
	Classes  int64 `json:"classes"`
}

// EnrollmentsByStatus groups a center's enrollments the way the
// management page shows them.
type EnrollmentsByStatus struct {
	Active    []Enrollment `json:"active"`
	Pending   []Enrollment `json:"pending"`
	Cancelled []Enrollment `json:"cancelled"`
}

type CenterRepo interface {
	GetDashboard(ctx context.Context, userID int) (*CenterDashboard, error)
	UpdateProfile(ctx context.Context, userID int, payload *CenterProfilePayload) (*Center, error)
	GetPrograms(ctx context.Context, userID int) (*[]Program, error)
	CreateProgram(ctx context.Context, userID int, payload *ProgramPayload) (*Program, error)
	UpdateProgram(ctx context.Context, userID, programID int, payload *ProgramPayload) (*Program, error)
	DeleteProgram(ctx context.Context, userID, programID int) error
	GetSchedules(ctx context.Context, userID int) (*[]Schedule, error)
	CreateSchedule(ctx context.Context, userID int, payload *SchedulePayload) (*Schedule, error)
	UpdateSchedule(ctx context.Context, userID, scheduleID int, payload *SchedulePayload) (*Schedule, error)
	DeleteSchedule(ctx context.Context, userID, scheduleID int) error
	GetEnrollments(ctx context.Context, userID int) (*EnrollmentsByStatus, error)
	ApproveEnrollment(ctx context.Context, userID, enrollmentID int) (*Enrollment, error)
	UpdateEnrollmentStatus(ctx context.Context, userID, enrollmentID int, status string) (*Enrollment, error)
	GetTeachers(ctx context.Context, userID int) (*[]Teacher, error)
	GetInviteCenter(ctx context.Context, userID int) (*Center, error)
}

type CenterUseCase interface {
	GetDashboard(ctx context.Context, userID int) (*CenterDashboard, error)
	UpdateProfile(ctx context.Context, userID int, payload *CenterProfilePayload) (*Center, error)
	GetPrograms(ctx context.Context, userID int) (*[]Program, error)
	CreateProgram(ctx context.Context, userID int, payload *ProgramPayload) (*Program, error)
	UpdateProgram(ctx context.Context, userID, programID int, payload *ProgramPayload) (*Program, error)
	DeleteProgram(ctx context.Context, userID, programID int) error
	GetSchedules(ctx context.Context, userID int) (*[]Schedule, error)
	CreateSchedule(ctx context.Context, userID int, payload *SchedulePayload) (*Schedule, error)
	UpdateSchedule(ctx context.Context, userID, scheduleID int, payload *SchedulePayload) (*Schedule, error)
	DeleteSchedule(ctx context.Context, userID, scheduleID int) error
	GetEnrollments(ctx context.Context, userID int) (*EnrollmentsByStatus, error)
	ApproveEnrollment(ctx context.Context, userID, enrollmentID int) (*Enrollment, error)
	UpdateEnrollmentStatus(ctx context.Context, userID, enrollmentID int, status string) (*Enrollment, error)
	GetTeachers(ctx context.Context, userID int) (*[]Teacher, error)
	GetInviteCenter(ctx context.Context, userID int) (*Center, error)
}
