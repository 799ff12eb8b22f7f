package usecase

import (
	"context"
	"kidfit/domain"
	"time"
)

type centerUseCase struct {
	repo    domain.CenterRepo
	TimeOut time.Duration
}

func NewCenterUseCase(repo domain.CenterRepo, to time.Duration) domain.CenterUseCase {
	return &centerUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (cu *centerUseCase) GetDashboard(ctx context.Context, userID int) (*domain.CenterDashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.GetDashboard(ctx, userID)
}

func (cu *centerUseCase) UpdateProfile(ctx context.Context, userID int, payload *domain.CenterProfilePayload) (*domain.Center, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.UpdateProfile(ctx, userID, payload)
}

func (cu *centerUseCase) GetPrograms(ctx context.Context, userID int) (*[]domain.Program, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.GetPrograms(ctx, userID)
}

func (cu *centerUseCase) CreateProgram(ctx context.Context, userID int, payload *domain.ProgramPayload) (*domain.Program, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.CreateProgram(ctx, userID, payload)
}

func (cu *centerUseCase) UpdateProgram(ctx context.Context, userID, programID int, payload *domain.ProgramPayload) (*domain.Program, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.UpdateProgram(ctx, userID, programID, payload)
}

func (cu *centerUseCase) DeleteProgram(ctx context.Context, userID, programID int) error {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.DeleteProgram(ctx, userID, programID)
}

func (cu *centerUseCase) GetSchedules(ctx context.Context, userID int) (*[]domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.GetSchedules(ctx, userID)
}

func (cu *centerUseCase) CreateSchedule(ctx context.Context, userID int, payload *domain.SchedulePayload) (*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.CreateSchedule(ctx, userID, payload)
}

func (cu *centerUseCase) UpdateSchedule(ctx context.Context, userID, scheduleID int, payload *domain.SchedulePayload) (*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.UpdateSchedule(ctx, userID, scheduleID, payload)
}

func (cu *centerUseCase) DeleteSchedule(ctx context.Context, userID, scheduleID int) error {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.DeleteSchedule(ctx, userID, scheduleID)
}

func (cu *centerUseCase) GetEnrollments(ctx context.Context, userID int) (*domain.EnrollmentsByStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.GetEnrollments(ctx, userID)
}

func (cu *centerUseCase) ApproveEnrollment(ctx context.Context, userID, enrollmentID int) (*domain.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.ApproveEnrollment(ctx, userID, enrollmentID)
}

func (cu *centerUseCase) UpdateEnrollmentStatus(ctx context.Context, userID, enrollmentID int, status string) (*domain.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.UpdateEnrollmentStatus(ctx, userID, enrollmentID, status)
}

func (cu *centerUseCase) GetTeachers(ctx context.Context, userID int) (*[]domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.GetTeachers(ctx, userID)
}

func (cu *centerUseCase) GetInviteCenter(ctx context.Context, userID int) (*domain.Center, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.GetInviteCenter(ctx, userID)
}
