package usecase

import (
	"context"
	"kidfit/domain"
	"time"
)

type authUseCase struct {
	repo    domain.AuthRepo
	TimeOut time.Duration
}

func NewAuthUseCase(repo domain.AuthRepo, to time.Duration) domain.AuthUseCase {
	return &authUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (au *authUseCase) RegisterParent(ctx context.Context, req *domain.RegisterParentRequest) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	return au.repo.RegisterParent(ctx, req)
}

func (au *authUseCase) RegisterCenter(ctx context.Context, req *domain.RegisterCenterRequest) (*domain.Center, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	return au.repo.RegisterCenter(ctx, req)
}

func (au *authUseCase) RegisterTeacher(ctx context.Context, req *domain.RegisterTeacherRequest) (*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	return au.repo.RegisterTeacher(ctx, req)
}

func (au *authUseCase) Login(ctx context.Context, req *domain.LoginRequest) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	return au.repo.Login(ctx, req)
}
