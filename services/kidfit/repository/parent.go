package repository

import (
	"context"
	"errors"
	"fmt"
	"kidfit/domain"
	"time"

	"gorm.io/gorm"
)

type parentRepository struct {
	db *gorm.DB
}

func NewParentRepository(database *gorm.DB) domain.ParentRepo {
	return &parentRepository{
		db: database,
	}
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

func (pr *parentRepository) parentByUserID(ctx context.Context, userID int) (*domain.Parent, error) {
	var parent domain.Parent
	err := pr.db.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		First(&parent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("parent profile not found")
		}
		return nil, err
	}
	return &parent, nil
}

func (pr *parentRepository) ownChild(ctx context.Context, parentID, childID int) (*domain.Child, error) {
	var child domain.Child
	err := pr.db.WithContext(ctx).
		Where("child_id = ? AND parent_id = ? AND deleted_at IS NULL", childID, parentID).
		First(&child).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrChildNotFound
		}
		return nil, err
	}
	return &child, nil
}

func (pr *parentRepository) GetDashboard(ctx context.Context, userID int) (*domain.ParentDashboard, error) {
	parent, err := pr.parentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var dashboard domain.ParentDashboard

	err = pr.db.WithContext(ctx).
		Where("parent_id = ? AND deleted_at IS NULL", parent.ParentID).
		Find(&dashboard.Children).Error
	if err != nil {
		return nil, err
	}

	err = pr.db.WithContext(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL AND deleted_at IS NULL").
		Find(&dashboard.MapCenters).Error
	if err != nil {
		return nil, err
	}

	err = pr.db.WithContext(ctx).
		Where("parent_id IS NULL AND is_active = true AND deleted_at IS NULL").
		Find(&dashboard.Categories).Error
	if err != nil {
		return nil, err
	}

	return &dashboard, nil
}

func (pr *parentRepository) GetChildren(ctx context.Context, userID int) (*[]domain.Child, error) {
	parent, err := pr.parentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var children []domain.Child
	err = pr.db.WithContext(ctx).
		Where("parent_id = ? AND deleted_at IS NULL", parent.ParentID).
		Order("created_at").
		Find(&children).Error
	if err != nil {
		return nil, err
	}
	return &children, nil
}

func (pr *parentRepository) CreateChild(ctx context.Context, userID int, payload *domain.ChildPayload) (*domain.Child, error) {
	parent, err := pr.parentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	child := domain.Child{
		ParentID: parent.ParentID,
		Name:     payload.Name,
		Grade:    payload.Grade,
		Notes:    payload.Notes,
		PhotoURL: payload.PhotoURL,
	}
	if payload.BirthDate != "" {
		birth, err := parseDate(payload.BirthDate)
		if err != nil {
			return nil, err
		}
		child.BirthDate = &birth
	}

	if err := pr.db.WithContext(ctx).Create(&child).Error; err != nil {
		return nil, err
	}
	return &child, nil
}

func (pr *parentRepository) UpdateChild(ctx context.Context, userID, childID int, payload *domain.ChildPayload) (*domain.Child, error) {
	parent, err := pr.parentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	child, err := pr.ownChild(ctx, parent.ParentID, childID)
	if err != nil {
		return nil, err
	}

	child.Name = payload.Name
	child.Grade = payload.Grade
	child.Notes = payload.Notes
	if payload.PhotoURL != "" {
		child.PhotoURL = payload.PhotoURL
	}
	if payload.BirthDate != "" {
		birth, err := parseDate(payload.BirthDate)
		if err != nil {
			return nil, err
		}
		child.BirthDate = &birth
	}

	if err := pr.db.WithContext(ctx).Save(child).Error; err != nil {
		return nil, err
	}
	return child, nil
}

func (pr *parentRepository) DeleteChild(ctx context.Context, userID, childID int) error {
	parent, err := pr.parentByUserID(ctx, userID)
	if err != nil {
		return err
	}

	child, err := pr.ownChild(ctx, parent.ParentID, childID)
	if err != nil {
		return err
	}

	var activeCount int64
	err = pr.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Where("child_id = ? AND status = ? AND deleted_at IS NULL", child.ChildID, domain.EnrollmentActive).
		Count(&activeCount).Error
	if err != nil {
		return err
	}
	if activeCount > 0 {
		return fmt.Errorf("cannot delete %s: cancel all active enrollments first", child.Name)
	}

	now := time.Now()
	child.DeletedAt = &now
	return pr.db.WithContext(ctx).Save(child).Error
}

func (pr *parentRepository) GetEnrollments(ctx context.Context, userID int) (*[]domain.Enrollment, error) {
	parent, err := pr.parentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var enrollments []domain.Enrollment
	err = pr.db.WithContext(ctx).
		Preload("Child").
		Preload("Schedule").
		Preload("Schedule.Program").
		Preload("Schedule.Program.Center").
		Joins("JOIN children ON children.child_id = enrollments.child_id").
		Where("children.parent_id = ? AND enrollments.deleted_at IS NULL", parent.ParentID).
		Order("enrollments.created_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return &enrollments, nil
}

func (pr *parentRepository) GetChildEnrollments(ctx context.Context, userID, childID int) (*[]domain.ChildEnrollmentInfo, error) {
	parent, err := pr.parentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	child, err := pr.ownChild(ctx, parent.ParentID, childID)
	if err != nil {
		return nil, err
	}

	var enrollments []domain.Enrollment
	err = pr.db.WithContext(ctx).
		Preload("Schedule").
		Preload("Schedule.Program").
		Preload("Schedule.Program.Center").
		Where("child_id = ? AND deleted_at IS NULL", child.ChildID).
		Order("created_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}

	infos := make([]domain.ChildEnrollmentInfo, 0, len(enrollments))
	for _, e := range enrollments {
		infos = append(infos, domain.ChildEnrollmentInfo{
			EnrollmentID:   e.EnrollmentID,
			ProgramName:    e.Schedule.Program.Name,
			CenterName:     e.Schedule.Program.Center.CenterName,
			ScheduleInfo:   fmt.Sprintf("%s %s", e.Schedule.DayName(), e.Schedule.TimeRange()),
			Status:         e.Status,
			EnrollmentDate: e.EnrollmentDate.Format("2006-01-02"),
		})
	}
	return &infos, nil
}

// Enroll runs the full eligibility pipeline against a snapshot of
// current rows, then inserts the enrollment in one transaction. The
// capacity read is not serialized against concurrent enrollments
// beyond the store's default isolation.
func (pr *parentRepository) Enroll(ctx context.Context, userID, scheduleID, childID int) (*domain.Enrollment, error) {
	parent, err := pr.parentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	child, err := pr.ownChild(ctx, parent.ParentID, childID)
	if err != nil {
		return nil, err
	}

	var schedule domain.Schedule
	err = pr.db.WithContext(ctx).
		Preload("Program").
		Where("schedule_id = ? AND is_active = true AND deleted_at IS NULL", scheduleID).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}

	var duplicateCount int64
	err = pr.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Where("child_id = ? AND schedule_id = ? AND status = ? AND deleted_at IS NULL",
			child.ChildID, schedule.ScheduleID, domain.EnrollmentActive).
		Count(&duplicateCount).Error
	if err != nil {
		return nil, err
	}

	var activeCount int64
	err = pr.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Where("schedule_id = ? AND status = ? AND deleted_at IS NULL",
			schedule.ScheduleID, domain.EnrollmentActive).
		Count(&activeCount).Error
	if err != nil {
		return nil, err
	}

	snap := domain.EligibilitySnapshot{
		Child:           child,
		Program:         &schedule.Program,
		Schedule:        &schedule,
		AlreadyEnrolled: duplicateCount > 0,
		ActiveCount:     activeCount,
		Today:           time.Now(),
	}
	if err := domain.CheckEligibility(&snap); err != nil {
		return nil, err
	}

	enrollment := domain.Enrollment{
		ChildID:        child.ChildID,
		ScheduleID:     schedule.ScheduleID,
		EnrollmentDate: time.Now(),
		Status:         domain.EnrollmentActive,
	}

	tx := pr.db.WithContext(ctx).Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	// Reload with everything the confirmation email needs.
	err = pr.db.WithContext(ctx).
		Preload("Child").
		Preload("Child.Parent").
		Preload("Child.Parent.User").
		Preload("Schedule").
		Preload("Schedule.Program").
		Preload("Schedule.Program.Center").
		Preload("Schedule.Program.Center.User").
		First(&enrollment, enrollment.EnrollmentID).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (pr *parentRepository) CancelEnrollment(ctx context.Context, userID, enrollmentID int) (*domain.Enrollment, error) {
	parent, err := pr.parentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var enrollment domain.Enrollment
	err = pr.db.WithContext(ctx).
		Preload("Child").
		Preload("Child.Parent").
		Preload("Child.Parent.User").
		Preload("Schedule").
		Preload("Schedule.Program").
		Preload("Schedule.Program.Center").
		Joins("JOIN children ON children.child_id = enrollments.child_id").
		Where("enrollments.enrollment_id = ? AND children.parent_id = ? AND enrollments.deleted_at IS NULL",
			enrollmentID, parent.ParentID).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("enrollment not found")
		}
		return nil, err
	}

	enrollment.Status = domain.EnrollmentCancelled
	if err := pr.db.WithContext(ctx).Save(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// GetAvailablePrograms lists the active class slots the child could
// join right now, applying the same admission rules as Enroll and
// silently skipping anything ineligible.
func (pr *parentRepository) GetAvailablePrograms(ctx context.Context, userID, childID int) (*[]domain.AvailableProgram, error) {
	parent, err := pr.parentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	child, err := pr.ownChild(ctx, parent.ParentID, childID)
	if err != nil {
		return nil, err
	}

	var schedules []domain.Schedule
	err = pr.db.WithContext(ctx).
		Preload("Program").
		Preload("Program.Center").
		Preload("Program.Category").
		Where("is_active = true AND deleted_at IS NULL").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}

	today := time.Now()
	available := make([]domain.AvailableProgram, 0)
	for i := range schedules {
		schedule := &schedules[i]

		var duplicateCount int64
		err = pr.db.WithContext(ctx).Model(&domain.Enrollment{}).
			Where("child_id = ? AND schedule_id = ? AND status = ? AND deleted_at IS NULL",
				child.ChildID, schedule.ScheduleID, domain.EnrollmentActive).
			Count(&duplicateCount).Error
		if err != nil {
			return nil, err
		}

		var activeCount int64
		err = pr.db.WithContext(ctx).Model(&domain.Enrollment{}).
			Where("schedule_id = ? AND status = ? AND deleted_at IS NULL",
				schedule.ScheduleID, domain.EnrollmentActive).
			Count(&activeCount).Error
		if err != nil {
			return nil, err
		}

		snap := domain.EligibilitySnapshot{
			Child:           child,
			Program:         &schedule.Program,
			Schedule:        schedule,
			AlreadyEnrolled: duplicateCount > 0,
			ActiveCount:     activeCount,
			Today:           today,
		}
		if domain.CheckEligibility(&snap) != nil {
			continue
		}

		available = append(available, domain.AvailableProgram{
			ProgramID:        schedule.Program.ProgramID,
			Name:             schedule.Program.Name,
			ShortDescription: schedule.Program.ShortDescription,
			CenterName:       schedule.Program.Center.CenterName,
			CategoryIcon:     schedule.Program.Category.Icon,
			CategoryColor:    schedule.Program.Category.Color,
			PriceDisplay:     schedule.Program.PriceDisplay(),
			Schedules: []domain.ScheduleSummary{{
				ScheduleID: schedule.ScheduleID,
				DayName:    schedule.DayName(),
				TimeRange:  schedule.TimeRange(),
			}},
		})
	}

	return &available, nil
}
