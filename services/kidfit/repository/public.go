package repository

import (
	"context"
	"errors"
	"fmt"
	"kidfit/domain"

	"gorm.io/gorm"
)

type publicRepository struct {
	db       *gorm.DB
	geocoder domain.Geocoder
}

func NewPublicRepository(database *gorm.DB, geocoder domain.Geocoder) domain.PublicRepo {
	return &publicRepository{
		db:       database,
		geocoder: geocoder,
	}
}

// SearchCenters returns geocoded centers only, optionally filtered by
// program category and a free-text search over name, description, and
// address. Each center carries up to three active programs.
func (pr *publicRepository) SearchCenters(ctx context.Context, filter *domain.CenterSearchFilter) (*[]domain.CenterSummary, error) {
	query := pr.db.WithContext(ctx).Model(&domain.Center{}).
		Preload("User").
		Where("centers.latitude IS NOT NULL AND centers.longitude IS NOT NULL AND centers.deleted_at IS NULL")

	if filter.CategoryID != nil {
		query = query.
			Joins("JOIN programs ON programs.center_id = centers.center_id").
			Where("programs.category_id = ? AND programs.deleted_at IS NULL", *filter.CategoryID).
			Distinct("centers.*")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"centers.center_name ILIKE ? OR centers.description ILIKE ? OR centers.address ILIKE ?",
			pattern, pattern, pattern)
	}

	var centers []domain.Center
	if err := query.Find(&centers).Error; err != nil {
		return nil, err
	}

	summaries := make([]domain.CenterSummary, 0, len(centers))
	for _, center := range centers {
		var programs []domain.Program
		err := pr.db.WithContext(ctx).
			Preload("Category").
			Where("center_id = ? AND is_active = true AND deleted_at IS NULL", center.CenterID).
			Find(&programs).Error
		if err != nil {
			return nil, err
		}

		var teacherCount int64
		err = pr.db.WithContext(ctx).Model(&domain.Teacher{}).
			Where("center_id = ? AND deleted_at IS NULL", center.CenterID).
			Count(&teacherCount).Error
		if err != nil {
			return nil, err
		}

		summary := domain.CenterSummary{
			CenterID:      center.CenterID,
			Name:          center.CenterName,
			Description:   center.Description,
			Address:       center.Address,
			Latitude:      *center.Latitude,
			Longitude:     *center.Longitude,
			Phone:         center.User.Phone,
			ProgramsCount: len(programs),
			TeachersCount: int(teacherCount),
			Programs:      []domain.ProgramSummary{},
		}

		for i, p := range programs {
			if i == 3 {
				break
			}
			summary.Programs = append(summary.Programs, domain.ProgramSummary{
				ProgramID:     p.ProgramID,
				Name:          p.Name,
				Category:      p.Category.Name,
				CategoryColor: p.Category.Color,
				CategoryIcon:  p.Category.Icon,
				Price:         p.PriceDisplay(),
				AgeRange:      p.AgeRange(),
			})
		}
		summaries = append(summaries, summary)
	}

	return &summaries, nil
}

func (pr *publicRepository) GetCenterStats(ctx context.Context, centerID int) (*domain.CenterStats, error) {
	var center domain.Center
	err := pr.db.WithContext(ctx).
		Where("center_id = ? AND deleted_at IS NULL", centerID).
		First(&center).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("center not found")
		}
		return nil, err
	}

	var stats domain.CenterStats

	err = pr.db.WithContext(ctx).Model(&domain.Program{}).
		Where("center_id = ? AND is_active = true AND deleted_at IS NULL", center.CenterID).
		Count(&stats.TotalPrograms).Error
	if err != nil {
		return nil, err
	}

	err = pr.db.WithContext(ctx).Model(&domain.Teacher{}).
		Where("center_id = ? AND deleted_at IS NULL", center.CenterID).
		Count(&stats.TotalTeachers).Error
	if err != nil {
		return nil, err
	}

	err = pr.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Joins("JOIN schedules ON schedules.schedule_id = enrollments.schedule_id").
		Joins("JOIN programs ON programs.program_id = schedules.program_id").
		Where("programs.center_id = ? AND enrollments.status = ? AND enrollments.deleted_at IS NULL",
			center.CenterID, domain.EnrollmentActive).
		Count(&stats.TotalStudents).Error
	if err != nil {
		return nil, err
	}

	var recent []domain.Enrollment
	err = pr.db.WithContext(ctx).
		Preload("Child").
		Preload("Schedule").
		Preload("Schedule.Program").
		Joins("JOIN schedules ON schedules.schedule_id = enrollments.schedule_id").
		Joins("JOIN programs ON programs.program_id = schedules.program_id").
		Where("programs.center_id = ? AND enrollments.deleted_at IS NULL", center.CenterID).
		Order("enrollments.created_at DESC").
		Limit(5).
		Find(&recent).Error
	if err != nil {
		return nil, err
	}

	stats.RecentEnrollments = make([]domain.RecentEnrollment, 0, len(recent))
	for _, e := range recent {
		stats.RecentEnrollments = append(stats.RecentEnrollments, domain.RecentEnrollment{
			ChildName:      e.Child.Name,
			ProgramName:    e.Schedule.Program.Name,
			EnrollmentDate: e.EnrollmentDate.Format("2006-01-02"),
			Status:         e.Status,
		})
	}

	return &stats, nil
}

func (pr *publicRepository) GetCenterProfile(ctx context.Context, centerID int) (*domain.CenterProfile, error) {
	var center domain.Center
	err := pr.db.WithContext(ctx).
		Preload("User").
		Where("center_id = ? AND deleted_at IS NULL", centerID).
		First(&center).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("center not found")
		}
		return nil, err
	}

	profile := domain.CenterProfile{Center: center}

	err = pr.db.WithContext(ctx).
		Preload("Category").
		Where("center_id = ? AND is_active = true AND deleted_at IS NULL", center.CenterID).
		Find(&profile.Programs).Error
	if err != nil {
		return nil, err
	}

	err = pr.db.WithContext(ctx).
		Preload("User").
		Where("center_id = ? AND deleted_at IS NULL", center.CenterID).
		Find(&profile.Teachers).Error
	if err != nil {
		return nil, err
	}

	var activeSchedules int64
	err = pr.db.WithContext(ctx).Model(&domain.Schedule{}).
		Joins("JOIN programs ON programs.program_id = schedules.program_id").
		Where("programs.center_id = ? AND schedules.is_active = true AND schedules.deleted_at IS NULL",
			center.CenterID).
		Count(&activeSchedules).Error
	if err != nil {
		return nil, err
	}

	categories := make(map[int]struct{})
	for _, p := range profile.Programs {
		categories[p.CategoryID] = struct{}{}
	}

	profile.Stats.Programs = len(profile.Programs)
	profile.Stats.Teachers = len(profile.Teachers)
	profile.Stats.ActiveSchedules = int(activeSchedules)
	profile.Stats.Categories = len(categories)

	return &profile, nil
}

func (pr *publicRepository) GetProgram(ctx context.Context, programID int) (*domain.Program, error) {
	var program domain.Program
	err := pr.db.WithContext(ctx).
		Preload("Center").
		Preload("Category").
		Where("program_id = ? AND is_active = true AND deleted_at IS NULL", programID).
		First(&program).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("program not found")
		}
		return nil, err
	}
	return &program, nil
}

func (pr *publicRepository) loadCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := pr.db.WithContext(ctx).
		Where("is_active = true AND deleted_at IS NULL").
		Order("category_id").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (pr *publicRepository) GetCategoryTree(ctx context.Context) (*[]domain.CategoryNode, error) {
	categories, err := pr.loadCategories(ctx)
	if err != nil {
		return nil, err
	}

	nodes := domain.NewCategoryTree(categories).Nested()
	return &nodes, nil
}

func (pr *publicRepository) GetCategoryPath(ctx context.Context, categoryID int) (string, error) {
	categories, err := pr.loadCategories(ctx)
	if err != nil {
		return "", err
	}

	path := domain.NewCategoryTree(categories).FullPath(categoryID)
	if path == "" {
		return "", fmt.Errorf("category not found")
	}
	return path, nil
}

// GeocodeMissingCenters backfills coordinates for centers registered
// before geocoding succeeded. Individual lookup failures are skipped,
// not fatal.
func (pr *publicRepository) GeocodeMissingCenters(ctx context.Context) (int, error) {
	var centers []domain.Center
	err := pr.db.WithContext(ctx).
		Where("latitude IS NULL AND deleted_at IS NULL").
		Find(&centers).Error
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range centers {
		coords, err := pr.geocoder.Geocode(ctx, centers[i].Address)
		if err != nil || coords == nil {
			continue
		}
		centers[i].Latitude = &coords.Latitude
		centers[i].Longitude = &coords.Longitude
		if err := pr.db.WithContext(ctx).Save(&centers[i]).Error; err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
