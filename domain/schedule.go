package domain

import (
	"fmt"
	"time"
)

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type Schedule struct {
	ScheduleID  int        `gorm:"primaryKey;autoIncrement" json:"schedule_id"`
	ProgramID   int        `gorm:"not null" json:"program_id"`
	Program     Program    `gorm:"references:ProgramID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"program" valid:"-"`
	TeacherID   int        `gorm:"not null" json:"teacher_id"`
	Teacher     Teacher    `gorm:"references:TeacherID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"teacher" valid:"-"`
	DayOfWeek   int        `gorm:"not null" json:"day_of_week"`
	StartTime   string     `gorm:"type:varchar(5);not null;" json:"start_time"`
	EndTime     string     `gorm:"type:varchar(5);not null;" json:"end_time"`
	MaxStudents int        `gorm:"default:20" json:"max_students"`
	RoomName    string     `gorm:"type:varchar(100)" json:"room_name"`
	Notes       string     `gorm:"type:text" json:"notes"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	StartDate   *time.Time `gorm:"type:date" json:"start_date"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   *time.Time `gorm:"index" json:"deleted_at"`
}

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func clockMinutes(s string) int {
	m, err := ParseClock(s)
	if err != nil {
		return 0
	}
	return m
}

// DayName maps DayOfWeek (0=Monday .. 6=Sunday) to its english name.
func (s *Schedule) DayName() string {
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return ""
	}
	return dayNames[s.DayOfWeek]
}

func (s *Schedule) TimeRange() string {
	return fmt.Sprintf("%s - %s", s.StartTime, s.EndTime)
}

func (s *Schedule) DurationMinutes() int {
	return clockMinutes(s.EndTime) - clockMinutes(s.StartTime)
}

// ConflictsWith reports whether two schedules collide: same teacher,
// same weekday, and overlapping [start,end) intervals. Intervals that
// merely touch (one ends when the other starts) do not conflict.
func (s *Schedule) ConflictsWith(other *Schedule) bool {
	if s.DayOfWeek != other.DayOfWeek {
		return false
	}
	if s.TeacherID != other.TeacherID {
		return false
	}

	aStart, aEnd := clockMinutes(s.StartTime), clockMinutes(s.EndTime)
	bStart, bEnd := clockMinutes(other.StartTime), clockMinutes(other.EndTime)
	return !(aEnd <= bStart || aStart >= bEnd)
}

type SchedulePayload struct {
	ProgramID   int    `json:"program_id" form:"program_id" valid:"required~Program is required"`
	TeacherID   int    `json:"teacher_id" form:"teacher_id" valid:"required~Teacher is required"`
	DayOfWeek   int    `json:"day_of_week" form:"day_of_week" valid:"range(0|6)~Day of week must be between 0 and 6"`
	StartTime   string `json:"start_time" form:"start_time" valid:"required~Start time is required"`
	EndTime     string `json:"end_time" form:"end_time" valid:"required~End time is required"`
	MaxStudents *int   `json:"max_students" form:"-" valid:"-"`
	RoomName    string `json:"room_name" form:"room_name" valid:"-"`
	Notes       string `json:"notes" form:"notes" valid:"-"`
	IsActive    bool   `json:"is_active" form:"-" valid:"-"`
}
