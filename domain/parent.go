package domain

import (
	"context"
	"time"
)

type Parent struct {
	ParentID  int        `gorm:"primaryKey;autoIncrement" json:"parent_id"`
	UserID    int        `gorm:"not null" json:"user_id"`
	User      User       `gorm:"references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user" valid:"-"`
	Address   string     `gorm:"type:varchar(200)" json:"address"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at"`
}

// ParentDashboard is what the parent landing page needs in one shot:
// own children, geocoded centers for the map, and the root categories
// used as search filters.
type ParentDashboard struct {
	Children   []Child    `json:"children"`
	MapCenters []Center   `json:"map_centers"`
	Categories []Category `json:"categories"`
}

type ChildEnrollmentInfo struct {
	EnrollmentID   int    `json:"id"`
	ProgramName    string `json:"program_name"`
	CenterName     string `json:"center_name"`
	ScheduleInfo   string `json:"schedule"`
	Status         string `json:"status"`
	EnrollmentDate string `json:"enrollment_date"`
}

type AvailableProgram struct {
	ProgramID        int               `json:"id"`
	Name             string            `json:"name"`
	ShortDescription string            `json:"short_description"`
	CenterName       string            `json:"center_name"`
	CategoryIcon     string            `json:"category_icon"`
	CategoryColor    string            `json:"category_color"`
	PriceDisplay     string            `json:"price_display"`
	Schedules        []ScheduleSummary `json:"schedules"`
}

type ScheduleSummary struct {
	ScheduleID int    `json:"id"`
	DayName    string `json:"day_name"`
	TimeRange  string `json:"time_range"`
}

type ParentRepo interface {
	GetDashboard(ctx context.Context, userID int) (*ParentDashboard, error)
	GetChildren(ctx context.Context, userID int) (*[]Child, error)
	CreateChild(ctx context.Context, userID int, payload *ChildPayload) (*Child, error)
	UpdateChild(ctx context.Context, userID, childID int, payload *ChildPayload) (*Child, error)
	DeleteChild(ctx context.Context, userID, childID int) error
	GetEnrollments(ctx context.Context, userID int) (*[]Enrollment, error)
	GetChildEnrollments(ctx context.Context, userID, childID int) (*[]ChildEnrollmentInfo, error)
	Enroll(ctx context.Context, userID, scheduleID, childID int) (*Enrollment, error)
	CancelEnrollment(ctx context.Context, userID, enrollmentID int) (*Enrollment, error)
	GetAvailablePrograms(ctx context.Context, userID, childID int) (*[]AvailableProgram, error)
}

type ParentUseCase interface {
	GetDashboard(ctx context.Context, userID int) (*ParentDashboard, error)
	GetChildren(ctx context.Context, userID int) (*[]Child, error)
	CreateChild(ctx context.Context, userID int, payload *ChildPayload) (*Child, error)
	UpdateChild(ctx context.Context, userID, childID int, payload *ChildPayload) (*Child, error)
	DeleteChild(ctx context.Context, userID, childID int) error
	GetEnrollments(ctx context.Context, userID int) (*[]Enrollment, error)
	GetChildEnrollments(ctx context.Context, userID, childID int) (*[]ChildEnrollmentInfo, error)
	Enroll(ctx context.Context, userID, scheduleID, childID int) (*Enrollment, error)
	CancelEnrollment(ctx context.Context, userID, enrollmentID int) (*Enrollment, error)
	GetAvailablePrograms(ctx context.Context, userID, childID int) (*[]AvailableProgram, error)
}
