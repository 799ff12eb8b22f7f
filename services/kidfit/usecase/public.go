package usecase

import (
	"context"
	"kidfit/domain"
	"time"
)

type publicUseCase struct {
	repo    domain.PublicRepo
	TimeOut time.Duration
}

func NewPublicUseCase(repo domain.PublicRepo, to time.Duration) domain.PublicUseCase {
	return &publicUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (pu *publicUseCase) SearchCenters(ctx context.Context, filter *domain.CenterSearchFilter) (*[]domain.CenterSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.SearchCenters(ctx, filter)
}

func (pu *publicUseCase) GetCenterStats(ctx context.Context, centerID int) (*domain.CenterStats, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetCenterStats(ctx, centerID)
}

func (pu *publicUseCase) GetCenterProfile(ctx context.Context, centerID int) (*domain.CenterProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetCenterProfile(ctx, centerID)
}

func (pu *publicUseCase) GetProgram(ctx context.Context, programID int) (*domain.Program, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetProgram(ctx, programID)
}

func (pu *publicUseCase) GetCategoryTree(ctx context.Context) (*[]domain.CategoryNode, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetCategoryTree(ctx)
}

func (pu *publicUseCase) GetCategoryPath(ctx context.Context, categoryID int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetCategoryPath(ctx, categoryID)
}

func (pu *publicUseCase) GeocodeMissingCenters(ctx context.Context) (int, error) {
	// The backfill geocodes one HTTP lookup per center; give it longer
	// than a single-query operation.
	ctx, cancel := context.WithTimeout(ctx, 4*pu.TimeOut)
	defer cancel()

	return pu.repo.GeocodeMissingCenters(ctx)
}
