package domain

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
)

type Claims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" valid:"required~Email is required,email~Invalid email format"`
	Password string `json:"password" form:"password" valid:"required~Password is required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

type RegisterParentRequest struct {
	Name     string `json:"name" form:"name" valid:"required~Name is required"`
	Email    string `json:"email" form:"email" valid:"required~Email is required,email~Invalid email format"`
	Password string `json:"password" form:"password" valid:"required~Password is required"`
	Phone    string `json:"phone" form:"phone" valid:"-"`
	Address  string `json:"address" form:"address" valid:"-"`
}

type RegisterCenterRequest struct {
	CenterName  string `json:"center_name" form:"center_name" valid:"required~Center name is required"`
	Name        string `json:"name" form:"name" valid:"required~Name is required"`
	Email       string `json:"email" form:"email" valid:"required~Email is required,email~Invalid email format"`
	Password    string `json:"password" form:"password" valid:"required~Password is required"`
	Phone       string `json:"phone" form:"phone" valid:"-"`
	Address     string `json:"address" form:"address" valid:"required~Address is required"`
	Description string `json:"description" form:"description" valid:"-"`
}

type RegisterTeacherRequest struct {
	InviteCode     string `json:"invite_code" form:"invite_code" valid:"required~Invite code is required"`
	Name           string `json:"name" form:"name" valid:"required~Name is required"`
	Email          string `json:"email" form:"email" valid:"required~Email is required,email~Invalid email format"`
	Password       string `json:"password" form:"password" valid:"required~Password is required"`
	Phone          string `json:"phone" form:"phone" valid:"-"`
	Specialization string `json:"specialization" form:"specialization" valid:"-"`
	Bio            string `json:"bio" form:"bio" valid:"-"`
}

type AuthRepo interface {
	RegisterParent(ctx context.Context, req *RegisterParentRequest) (*User, error)
	RegisterCenter(ctx context.Context, req *RegisterCenterRequest) (*Center, error)
	RegisterTeacher(ctx context.Context, req *RegisterTeacherRequest) (*Teacher, error)
	Login(ctx context.Context, req *LoginRequest) (*User, error)
}

type AuthUseCase interface {
	RegisterParent(ctx context.Context, req *RegisterParentRequest) (*User, error)
	RegisterCenter(ctx context.Context, req *RegisterCenterRequest) (*Center, error)
	RegisterTeacher(ctx context.Context, req *RegisterTeacherRequest) (*Teacher, error)
	Login(ctx context.Context, req *LoginRequest) (*User, error)
}
