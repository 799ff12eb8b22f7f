package repository

import (
	"context"
	"errors"
	"fmt"
	"kidfit/domain"
	"time"

	"gorm.io/gorm"
)

type centerRepository struct {
	db       *gorm.DB
	geocoder domain.Geocoder
}

func NewCenterRepository(database *gorm.DB, geocoder domain.Geocoder) domain.CenterRepo {
	return &centerRepository{
		db:       database,
		geocoder: geocoder,
	}
}

func (cr *centerRepository) centerByUserID(ctx context.Context, userID int) (*domain.Center, error) {
	var center domain.Center
	err := cr.db.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		First(&center).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("center profile not found")
		}
		return nil, err
	}
	return &center, nil
}

func (cr *centerRepository) ownProgram(ctx context.Context, centerID, programID int) (*domain.Program, error) {
	var program domain.Program
	err := cr.db.WithContext(ctx).
		Where("program_id = ? AND center_id = ? AND deleted_at IS NULL", programID, centerID).
		First(&program).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("program not found")
		}
		return nil, err
	}
	return &program, nil
}

func (cr *centerRepository) ownSchedule(ctx context.Context, centerID, scheduleID int) (*domain.Schedule, error) {
	var schedule domain.Schedule
	err := cr.db.WithContext(ctx).
		Preload("Program").
		Joins("JOIN programs ON programs.program_id = schedules.program_id").
		Where("schedules.schedule_id = ? AND programs.center_id = ? AND schedules.deleted_at IS NULL",
			scheduleID, centerID).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

func (cr *centerRepository) ownEnrollment(ctx context.Context, centerID, enrollmentID int) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	err := cr.db.WithContext(ctx).
		Preload("Child").
		Preload("Child.Parent").
		Preload("Child.Parent.User").
		Preload("Schedule").
		Preload("Schedule.Program").
		Preload("Schedule.Program.Center").
		Joins("JOIN schedules ON schedules.schedule_id = enrollments.schedule_id").
		Joins("JOIN programs ON programs.program_id = schedules.program_id").
		Where("enrollments.enrollment_id = ? AND programs.center_id = ? AND enrollments.deleted_at IS NULL",
			enrollmentID, centerID).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("enrollment not found")
		}
		return nil, err
	}
	return &enrollment, nil
}

func (cr *centerRepository) GetDashboard(ctx context.Context, userID int) (*domain.CenterDashboard, error) {
	center, err := cr.centerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := domain.CenterDashboard{Center: *center}

	err = cr.db.WithContext(ctx).Model(&domain.Program{}).
		Where("center_id = ? AND deleted_at IS NULL", center.CenterID).
		Count(&dashboard.Stats.Programs).Error
	if err != nil {
		return nil, err
	}

	err = cr.db.WithContext(ctx).Model(&domain.Teacher{}).
		Where("center_id = ? AND deleted_at IS NULL", center.CenterID).
		Count(&dashboard.Stats.Teachers).Error
	if err != nil {
		return nil, err
	}

	err = cr.db.WithContext(ctx).Model(&domain.Schedule{}).
		Joins("JOIN programs ON programs.program_id = schedules.program_id").
		Where("programs.center_id = ? AND schedules.deleted_at IS NULL", center.CenterID).
		Count(&dashboard.Stats.Classes).Error
	if err != nil {
		return nil, err
	}

	err = cr.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Joins("JOIN schedules ON schedules.schedule_id = enrollments.schedule_id").
		Joins("JOIN programs ON programs.program_id = schedules.program_id").
		Where("programs.center_id = ? AND enrollments.status = ? AND enrollments.deleted_at IS NULL",
			center.CenterID, domain.EnrollmentActive).
		Count(&dashboard.Stats.Students).Error
	if err != nil {
		return nil, err
	}

	err = cr.db.WithContext(ctx).
		Preload("Program").
		Preload("Teacher").
		Preload("Teacher.User").
		Joins("JOIN programs ON programs.program_id = schedules.program_id").
		Where("programs.center_id = ? AND schedules.deleted_at IS NULL", center.CenterID).
		Order("schedules.created_at DESC").
		Limit(5).
		Find(&dashboard.RecentSchedules).Error
	if err != nil {
		return nil, err
	}

	return &dashboard, nil
}

// UpdateProfile saves the center profile and re-geocodes when the
// address changed. A failed lookup clears the pin rather than leaving
// it on the old address.
func (cr *centerRepository) UpdateProfile(ctx context.Context, userID int, payload *domain.CenterProfilePayload) (*domain.Center, error) {
	center, err := cr.centerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	addressChanged := payload.Address != center.Address

	center.CenterName = payload.CenterName
	center.Description = payload.Description
	center.Address = payload.Address
	center.Website = payload.Website
	center.ScheduleInfo = payload.ScheduleInfo
	if payload.PhotoURL != "" {
		center.PhotoURL = payload.PhotoURL
	}

	if addressChanged {
		center.Latitude, center.Longitude = nil, nil
		coords, err := cr.geocoder.Geocode(ctx, payload.Address)
		if err == nil && coords != nil {
			center.Latitude = &coords.Latitude
			center.Longitude = &coords.Longitude
		}
	}

	tx := cr.db.WithContext(ctx).Begin()
	if err := tx.Save(center).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if payload.Phone != "" {
		err := tx.Model(&domain.User{}).
			Where("user_id = ?", center.UserID).
			Update("phone", payload.Phone).Error
		if err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return center, nil
}

func (cr *centerRepository) GetPrograms(ctx context.Context, userID int) (*[]domain.Program, error) {
	center, err := cr.centerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var programs []domain.Program
	err = cr.db.WithContext(ctx).
		Preload("Category").
		Where("center_id = ? AND deleted_at IS NULL", center.CenterID).
		Order("created_at").
		Find(&programs).Error
	if err != nil {
		return nil, err
	}
	return &programs, nil
}

func applyProgramPayload(program *domain.Program, payload *domain.ProgramPayload) {
	program.Name = payload.Name
	program.CategoryID = payload.CategoryID
	program.Description = payload.Description
	program.ShortDescription = payload.ShortDescription
	program.PricePerMonth = payload.PricePerMonth
	program.PricePerSession = payload.PricePerSession
	program.DurationMinutes = payload.DurationMinutes
	program.MinAge = payload.MinAge
	program.MaxAge = payload.MaxAge
	program.Requirements = payload.Requirements
	program.Benefits = payload.Benefits
	if payload.MaxStudents > 0 {
		program.MaxStudents = payload.MaxStudents
	} else {
		program.MaxStudents = 20
	}
	if payload.PhotoURL != "" {
		program.PhotoURL = payload.PhotoURL
	}
}

func (cr *centerRepository) CreateProgram(ctx context.Context, userID int, payload *domain.ProgramPayload) (*domain.Program, error) {
	center, err := cr.centerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	program := domain.Program{
		CenterID: center.CenterID,
		IsActive: true,
	}
	applyProgramPayload(&program, payload)

	if err := cr.db.WithContext(ctx).Create(&program).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

func (cr *centerRepository) UpdateProgram(ctx context.Context, userID, programID int, payload *domain.ProgramPayload) (*domain.Program, error) {
	center, err := cr.centerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	program, err := cr.ownProgram(ctx, center.CenterID, programID)
	if err != nil {
		return nil, err
	}

	applyProgramPayload(program, payload)
	program.IsActive = payload.IsActive

	if err := cr.db.WithContext(ctx).Save(program).Error; err != nil {
		return nil, err
	}
	return program, nil
}

func (cr *centerRepository) DeleteProgram(ctx context.Context, userID, programID int) error {
	center, err := cr.centerByUserID(ctx, userID)
	if err != nil {
		return err
	}

	program, err := cr.ownProgram(ctx, center.CenterID, programID)
	if err != nil {
		return err
	}

	var activeCount int64
	err = cr.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Joins("JOIN schedules ON schedules.schedule_id = enrollments.schedule_id").
		Where("schedules.program_id = ? AND enrollments.status = ? AND enrollments.deleted_at IS NULL",
			program.ProgramID, domain.EnrollmentActive).
		Count(&activeCount).Error
	if err != nil {
		return err
	}
	if activeCount > 0 {
		return fmt.Errorf("cannot delete program with %d active enrollments", activeCount)
	}

	now := time.Now()
	program.DeletedAt = &now
	return cr.db.WithContext(ctx).Save(program).Error
}

func (cr *centerRepository) GetSchedules(ctx context.Context, userID int) (*[]domain.Schedule, error) {
	center, err := cr.centerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var schedules []domain.Schedule
	err = cr.db.WithContext(ctx).
		Preload("Program").
		Preload("Teacher").
		Preload("Teacher.User").
		Joins("JOIN programs ON programs.program_id = schedules.program_id").
		Where("programs.center_id = ? AND schedules.deleted_at IS NULL", center.CenterID).
		Order("schedules.day_of_week, schedules.start_time").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return &schedules, nil
}

// checkScheduleSlot validates the payload and runs the conflict check
// against every other active schedule of the teacher on that weekday.
// excludeID skips the schedule being edited.
func (cr *centerRepository) checkScheduleSlot(ctx context.Context, candidate *domain.Schedule, excludeID int) error {
	start, err := domain.ParseClock(candidate.StartTime)
	if err != nil {
		return err
	}
	end, err := domain.ParseClock(candidate.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("end time must be after start time")
	}
	if candidate.DayOfWeek < 0 || candidate.DayOfWeek > 6 {
		return fmt.Errorf("day of week must be between 0 and 6")
	}

	var existing []domain.Schedule
	query := cr.db.WithContext(ctx).
		Preload("Program").
		Where("teacher_id = ? AND day_of_week = ? AND is_active = true AND deleted_at IS NULL",
			candidate.TeacherID, candidate.DayOfWeek)
	if excludeID != 0 {
		query = query.Where("schedule_id <> ?", excludeID)
	}
	if err := query.Find(&existing).Error; err != nil {
		return err
	}

	for i := range existing {
		if candidate.ConflictsWith(&existing[i]) {
			return fmt.Errorf("schedule conflicts with existing class: %s at %s",
				existing[i].Program.Name, existing[i].TimeRange())
		}
	}
	return nil
}

func (cr *centerRepository) CreateSchedule(ctx context.Context, userID int, payload *domain.SchedulePayload) (*domain.Schedule, error) {
	center, err := cr.centerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	program, err := cr.ownProgram(ctx, center.CenterID, payload.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("invalid program selection")
	}

	var teacher domain.Teacher
	err = cr.db.WithContext(ctx).
		Where("teacher_id = ? AND center_id = ? AND deleted_at IS NULL", payload.TeacherID, center.CenterID).
		First(&teacher).Error
	if err != nil {
		return nil, fmt.Errorf("invalid teacher selection")
	}

	maxStudents := program.MaxStudents
	if payload.MaxStudents != nil && *payload.MaxStudents > 0 {
		maxStudents = *payload.MaxStudents
	}

	now := time.Now()
	schedule := domain.Schedule{
		ProgramID:   program.ProgramID,
		TeacherID:   teacher.TeacherID,
		DayOfWeek:   payload.DayOfWeek,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		MaxStudents: maxStudents,
		RoomName:    payload.RoomName,
		Notes:       payload.Notes,
		IsActive:    true,
		StartDate:   &now,
	}

	if err := cr.checkScheduleSlot(ctx, &schedule, 0); err != nil {
		return nil, err
	}

	tx := cr.db.WithContext(ctx).Begin()
	if err := tx.Create(&schedule).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	schedule.Program = *program
	schedule.Teacher = teacher
	return &schedule, nil
}

func (cr *centerRepository) UpdateSchedule(ctx context.Context, userID, scheduleID int, payload *domain.SchedulePayload) (*domain.Schedule, error) {
	center, err := cr.centerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	schedule, err := cr.ownSchedule(ctx, center.CenterID, scheduleID)
	if err != nil {
		return nil, err
	}

	program, err := cr.ownProgram(ctx, center.CenterID, payload.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("invalid program selection")
	}

	var teacher domain.Teacher
	err = cr.db.WithContext(ctx).
		Where("teacher_id = ? AND center_id = ? AND deleted_at IS NULL", payload.TeacherID, center.CenterID).
		First(&teacher).Error
	if err != nil {
		return nil, fmt.Errorf("invalid teacher selection")
	}

	schedule.ProgramID = program.ProgramID
	schedule.TeacherID = teacher.TeacherID
	schedule.DayOfWeek = payload.DayOfWeek
	schedule.StartTime = payload.StartTime
	schedule.EndTime = payload.EndTime
	schedule.RoomName = payload.RoomName
	schedule.Notes = payload.Notes
	schedule.IsActive = payload.IsActive
	if payload.MaxStudents != nil && *payload.MaxStudents > 0 {
		schedule.MaxStudents = *payload.MaxStudents
	} else {
		schedule.MaxStudents = program.MaxStudents
	}

	if err := cr.checkScheduleSlot(ctx, schedule, schedule.ScheduleID); err != nil {
		return nil, err
	}

	if err := cr.db.WithContext(ctx).Save(schedule).Error; err != nil {
		return nil, err
	}

	schedule.Program = *program
	schedule.Teacher = teacher
	return schedule, nil
}

func (cr *centerRepository) DeleteSchedule(ctx context.Context, userID, scheduleID int) error {
	center, err := cr.centerByUserID(ctx, userID)
	if err != nil {
		return err
	}

	schedule, err := cr.ownSchedule(ctx, center.CenterID, scheduleID)
	if err != nil {
		return err
	}

	var activeCount int64
	err = cr.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Where("schedule_id = ? AND status = ? AND deleted_at IS NULL",
			schedule.ScheduleID, domain.EnrollmentActive).
		Count(&activeCount).Error
	if err != nil {
		return err
	}
	if activeCount > 0 {
		return fmt.Errorf("cannot delete schedule with %d active enrollments: cancel enrollments first", activeCount)
	}

	now := time.Now()
	schedule.DeletedAt = &now
	return cr.db.WithContext(ctx).Save(schedule).Error
}

func (cr *centerRepository) GetEnrollments(ctx context.Context, userID int) (*domain.EnrollmentsByStatus, error) {
	center, err := cr.centerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var enrollments []domain.Enrollment
	err = cr.db.WithContext(ctx).
		Preload("Child").
		Preload("Schedule").
		Preload("Schedule.Program").
		Joins("JOIN schedules ON schedules.schedule_id = enrollments.schedule_id").
		Joins("JOIN programs ON programs.program_id = schedules.program_id").
		Where("programs.center_id = ? AND enrollments.deleted_at IS NULL", center.CenterID).
		Order("enrollments.created_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}

	grouped := domain.EnrollmentsByStatus{
		Active:    []domain.Enrollment{},
		Pending:   []domain.Enrollment{},
		Cancelled: []domain.Enrollment{},
	}
	for _, e := range enrollments {
		switch e.Status {
		case domain.EnrollmentActive:
			grouped.Active = append(grouped.Active, e)
		case domain.EnrollmentPending:
			grouped.Pending = append(grouped.Pending, e)
		case domain.EnrollmentCancelled:
			grouped.Cancelled = append(grouped.Cancelled, e)
		}
	}
	return &grouped, nil
}

func (cr *centerRepository) ApproveEnrollment(ctx context.Context, userID, enrollmentID int) (*domain.Enrollment, error) {
	center, err := cr.centerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	enrollment, err := cr.ownEnrollment(ctx, center.CenterID, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment.Status != domain.EnrollmentPending {
		return nil, fmt.Errorf("enrollment is not pending approval")
	}

	now := time.Now()
	enrollment.Status = domain.EnrollmentActive
	enrollment.ApprovedBy = &userID
	enrollment.ApprovedAt = &now

	if err := cr.db.WithContext(ctx).Save(enrollment).Error; err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (cr *centerRepository) UpdateEnrollmentStatus(ctx context.Context, userID, enrollmentID int, status string) (*domain.Enrollment, error) {
	switch status {
	case domain.EnrollmentActive, domain.EnrollmentPaused, domain.EnrollmentCancelled:
	default:
		return nil, fmt.Errorf("invalid enrollment status %q", status)
	}

	center, err := cr.centerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	enrollment, err := cr.ownEnrollment(ctx, center.CenterID, enrollmentID)
	if err != nil {
		return nil, err
	}

	enrollment.Status = status
	if status == domain.EnrollmentActive {
		now := time.Now()
		enrollment.ApprovedBy = &userID
		enrollment.ApprovedAt = &now
	}

	if err := cr.db.WithContext(ctx).Save(enrollment).Error; err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (cr *centerRepository) GetTeachers(ctx context.Context, userID int) (*[]domain.Teacher, error) {
	center, err := cr.centerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var teachers []domain.Teacher
	err = cr.db.WithContext(ctx).
		Preload("User").
		Where("center_id = ? AND deleted_at IS NULL", center.CenterID).
		Order("created_at").
		Find(&teachers).Error
	if err != nil {
		return nil, err
	}
	return &teachers, nil
}

func (cr *centerRepository) GetInviteCenter(ctx context.Context, userID int) (*domain.Center, error) {
	return cr.centerByUserID(ctx, userID)
}
