package usecase

import (
	"context"
	"kidfit/domain"
	"time"
)

type parentUseCase struct {
	repo    domain.ParentRepo
	TimeOut time.Duration
}

func NewParentUseCase(repo domain.ParentRepo, to time.Duration) domain.ParentUseCase {
	return &parentUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (pu *parentUseCase) GetDashboard(ctx context.Context, userID int) (*domain.ParentDashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetDashboard(ctx, userID)
}

func (pu *parentUseCase) GetChildren(ctx context.Context, userID int) (*[]domain.Child, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetChildren(ctx, userID)
}

func (pu *parentUseCase) CreateChild(ctx context.Context, userID int, payload *domain.ChildPayload) (*domain.Child, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.CreateChild(ctx, userID, payload)
}

func (pu *parentUseCase) UpdateChild(ctx context.Context, userID, childID int, payload *domain.ChildPayload) (*domain.Child, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.UpdateChild(ctx, userID, childID, payload)
}

func (pu *parentUseCase) DeleteChild(ctx context.Context, userID, childID int) error {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.DeleteChild(ctx, userID, childID)
}

func (pu *parentUseCase) GetEnrollments(ctx context.Context, userID int) (*[]domain.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetEnrollments(ctx, userID)
}

func (pu *parentUseCase) GetChildEnrollments(ctx context.Context, userID, childID int) (*[]domain.ChildEnrollmentInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetChildEnrollments(ctx, userID, childID)
}

func (pu *parentUseCase) Enroll(ctx context.Context, userID, scheduleID, childID int) (*domain.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.Enroll(ctx, userID, scheduleID, childID)
}

func (pu *parentUseCase) CancelEnrollment(ctx context.Context, userID, enrollmentID int) (*domain.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.CancelEnrollment(ctx, userID, enrollmentID)
}

func (pu *parentUseCase) GetAvailablePrograms(ctx context.Context, userID, childID int) (*[]domain.AvailableProgram, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetAvailablePrograms(ctx, userID, childID)
}
