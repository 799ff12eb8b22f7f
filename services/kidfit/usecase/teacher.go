package usecase

import (
	"context"
	"kidfit/domain"
	"time"
)

type teacherUseCase struct {
	repo    domain.TeacherRepo
	TimeOut time.Duration
}

func NewTeacherUseCase(repo domain.TeacherRepo, to time.Duration) domain.TeacherUseCase {
	return &teacherUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (tu *teacherUseCase) GetDashboard(ctx context.Context, userID int) (*domain.TeacherDashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, tu.TimeOut)
	defer cancel()

	return tu.repo.GetDashboard(ctx, userID)
}

func (tu *teacherUseCase) GetWeeklySchedule(ctx context.Context, userID int) (*[]domain.DaySchedules, error) {
	ctx, cancel := context.WithTimeout(ctx, tu.TimeOut)
	defer cancel()

	return tu.repo.GetWeeklySchedule(ctx, userID)
}

func (tu *teacherUseCase) GetRoster(ctx context.Context, userID int) (*[]domain.ClassRoster, error) {
	ctx, cancel := context.WithTimeout(ctx, tu.TimeOut)
	defer cancel()

	return tu.repo.GetRoster(ctx, userID)
}

func (tu *teacherUseCase) RecordAttendance(ctx context.Context, userID int, payload *domain.AttendancePayload) (*domain.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, tu.TimeOut)
	defer cancel()

	return tu.repo.RecordAttendance(ctx, userID, payload)
}

func (tu *teacherUseCase) GetAttendanceLog(ctx context.Context, userID, scheduleID int, classDate string) (*[]domain.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, tu.TimeOut)
	defer cancel()

	return tu.repo.GetAttendanceLog(ctx, userID, scheduleID, classDate)
}
