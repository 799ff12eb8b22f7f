package domain

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

type Program struct {
	ProgramID        int        `gorm:"primaryKey;autoIncrement" json:"program_id"`
	CenterID         int        `gorm:"not null" json:"center_id"`
	Center           Center     `gorm:"references:CenterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"center" valid:"-"`
	CategoryID       int        `gorm:"not null" json:"category_id"`
	Category         Category   `gorm:"references:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category" valid:"-"`
	Name             string     `gorm:"type:varchar(150);not null;" json:"name" valid:"required~Program name is required"`
	Description      string     `gorm:"type:text" json:"description"`
	ShortDescription string     `gorm:"type:varchar(255)" json:"short_description"`
	PricePerMonth    *float64   `json:"price_per_month"`
	PricePerSession  *float64   `json:"price_per_session"`
	DurationMinutes  *int       `json:"duration_minutes"`
	MinAge           *int       `json:"min_age"`
	MaxAge           *int       `json:"max_age"`
	MaxStudents      int        `gorm:"default:20" json:"max_students"`
	IsActive         bool       `gorm:"default:true" json:"is_active"`
	IsFeatured       bool       `gorm:"default:false" json:"is_featured"`
	Requirements     string     `gorm:"type:text" json:"requirements"`
	Benefits         string     `gorm:"type:text" json:"benefits"`
	PhotoURL         string     `gorm:"type:varchar(255)" json:"photo_url"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        *time.Time `gorm:"index" json:"deleted_at"`
}

// AgeRange renders the age bounds for listings. Either bound may be
// absent, meaning unconstrained on that side.
func (p *Program) AgeRange() string {
	switch {
	case p.MinAge != nil && p.MaxAge != nil:
		return fmt.Sprintf("%d-%d years", *p.MinAge, *p.MaxAge)
	case p.MinAge != nil:
		return fmt.Sprintf("%d+ years", *p.MinAge)
	case p.MaxAge != nil:
		return fmt.Sprintf("Up to %d years", *p.MaxAge)
	}
	return "All ages"
}

// PriceDisplay renders the pricing options, tenge per month/session,
// with grouped digits ("25,000₸/month").
func (p *Program) PriceDisplay() string {
	var prices []string
	if p.PricePerMonth != nil {
		prices = append(prices, pricePrinter.Sprintf("%.0f₸/month", *p.PricePerMonth))
	}
	if p.PricePerSession != nil {
		prices = append(prices, pricePrinter.Sprintf("%.0f₸/session", *p.PricePerSession))
	}
	if len(prices) == 0 {
		return "Contact for pricing"
	}
	return strings.Join(prices, " or ")
}

type ProgramPayload struct {
	Name             string   `json:"name" form:"name" valid:"required~Program name is required"`
	CategoryID       int      `json:"category_id" form:"category_id" valid:"required~Category is required"`
	Description      string   `json:"description" form:"description" valid:"-"`
	ShortDescription string   `json:"short_description" form:"short_description" valid:"-"`
	PricePerMonth    *float64 `json:"price_per_month" form:"-" valid:"-"`
	PricePerSession  *float64 `json:"price_per_session" form:"-" valid:"-"`
	DurationMinutes  *int     `json:"duration_minutes" form:"-" valid:"-"`
	MinAge           *int     `json:"min_age" form:"-" valid:"-"`
	MaxAge           *int     `json:"max_age" form:"-" valid:"-"`
	MaxStudents      int      `json:"max_students" form:"-" valid:"-"`
	Requirements     string   `json:"requirements" form:"requirements" valid:"-"`
	Benefits         string   `json:"benefits" form:"benefits" valid:"-"`
	IsActive         bool     `json:"is_active" form:"-" valid:"-"`
	PhotoURL         string   `json:"-" form:"-" valid:"-"`
}
