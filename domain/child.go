package domain

import (
	"time"
)

type Child struct {
	ChildID   int        `gorm:"primaryKey;autoIncrement" json:"child_id"`
	ParentID  int        `gorm:"not null" json:"parent_id"`
	Parent    Parent     `gorm:"references:ParentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"parent" valid:"-"`
	Name      string     `gorm:"type:varchar(100);not null;" json:"name" valid:"required~Child name is required"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date"`
	Grade     string     `gorm:"type:varchar(20)" json:"grade"`
	Notes     string     `gorm:"type:text" json:"notes"`
	PhotoURL  string     `gorm:"type:varchar(255)" json:"photo_url"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at"`
}

type ChildPayload struct {
	Name      string `json:"name" form:"name" valid:"required~Child name is required"`
	BirthDate string `json:"birth_date" form:"birth_date" valid:"-"`
	Grade     string `json:"grade" form:"grade" valid:"-"`
	Notes     string `json:"notes" form:"notes" valid:"-"`
	PhotoURL  string `json:"-" form:"-" valid:"-"`
}

// AgeOn computes age in whole calendar years, ignoring month and day.
// A child one day before their birthday already counts as a year older;
// that is the documented behavior the eligibility rules are tested
// against, so keep it.
func AgeOn(birth, today time.Time) int {
	return today.Year() - birth.Year()
}
