package domain

import (
	"context"
)

// CenterSummary is one map pin on the public centers map, with up to
// three of the center's active programs attached.
type CenterSummary struct {
	CenterID      int              `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Address       string           `json:"address"`
	Latitude      float64          `json:"latitude"`
	Longitude     float64          `json:"longitude"`
	Phone         string           `json:"phone"`
	ProgramsCount int              `json:"programs_count"`
	TeachersCount int              `json:"teachers_count"`
	Programs      []ProgramSummary `json:"programs"`
}

type ProgramSummary struct {
	ProgramID     int    `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	CategoryColor string `json:"category_color"`
	CategoryIcon  string `json:"category_icon"`
	Price         string `json:"price"`
	AgeRange      string `json:"age_range"`
}

type CenterStats struct {
	TotalPrograms     int64              `json:"total_programs"`
	TotalTeachers     int64              `json:"total_teachers"`
	TotalStudents     int64              `json:"total_students"`
	RecentEnrollments []RecentEnrollment `json:"recent_enrollments"`
}

type RecentEnrollment struct {
	ChildName      string `json:"child_name"`
	ProgramName    string `json:"program_name"`
	EnrollmentDate string `json:"enrollment_date"`
	Status         string `json:"status"`
}

type CenterProfile struct {
	Center   Center    `json:"center"`
	Programs []Program `json:"programs"`
	Teachers []Teacher `json:"teachers"`
	Stats    struct {
		Programs        int `json:"programs"`
		Teachers        int `json:"teachers"`
		ActiveSchedules int `json:"active_schedules"`
		Categories      int `json:"categories"`
	} `json:"stats"`
}

type CenterSearchFilter struct {
	CategoryID *int
	Search     string
}

type PublicRepo interface {
	SearchCenters(ctx context.Context, filter *CenterSearchFilter) (*[]CenterSummary, error)
	GetCenterStats(ctx context.Context, centerID int) (*CenterStats, error)
	GetCenterProfile(ctx context.Context, centerID int) (*CenterProfile, error)
	GetProgram(ctx context.Context, programID int) (*Program, error)
	GetCategoryTree(ctx context.Context) (*[]CategoryNode, error)
	GetCategoryPath(ctx context.Context, categoryID int) (string, error)
	GeocodeMissingCenters(ctx context.Context) (int, error)
}

type PublicUseCase interface {
	SearchCenters(ctx context.Context, filter *CenterSearchFilter) (*[]CenterSummary, error)
	GetCenterStats(ctx context.Context, centerID int) (*CenterStats, error)
	GetCenterProfile(ctx context.Context, centerID int) (*CenterProfile, error)
	GetProgram(ctx context.Context, programID int) (*Program, error)
	GetCategoryTree(ctx context.Context) (*[]CategoryNode, error)
	GetCategoryPath(ctx context.Context, categoryID int) (string, error)
	GeocodeMissingCenters(ctx context.Context) (int, error)
}
