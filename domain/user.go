package domain

import (
	"time"
)

const (
	RoleParent  = "parent"
	RoleCenter  = "center"
	RoleTeacher = "teacher"
)

type User struct {
	UserID    int        `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Email     string     `gorm:"type:varchar(120);unique;not null;" json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password  string     `gorm:"type:varchar(255);not null;" json:"-"`
	Name      string     `gorm:"type:varchar(100);not null;" json:"name" valid:"required~Name is required"`
	Phone     string     `gorm:"type:varchar(20)" json:"phone"`
	Role      string     `gorm:"type:role_enum;not null" json:"role" valid:"required~Role is required,in(parent|center|teacher)~Invalid role"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at"`
}
