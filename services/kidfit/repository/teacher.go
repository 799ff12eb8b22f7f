package repository

import (
	"context"
	"errors"
	"fmt"
	"kidfit/domain"
	"time"

	"gorm.io/gorm"
)

type teacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(database *gorm.DB) domain.TeacherRepo {
	return &teacherRepository{
		db: database,
	}
}

func (tr *teacherRepository) teacherByUserID(ctx context.Context, userID int) (*domain.Teacher, error) {
	var teacher domain.Teacher
	err := tr.db.WithContext(ctx).
		Preload("Center").
		Where("user_id = ? AND deleted_at IS NULL", userID).
		First(&teacher).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("teacher profile not found")
		}
		return nil, err
	}
	return &teacher, nil
}

func (tr *teacherRepository) activeSchedules(ctx context.Context, teacherID int) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	err := tr.db.WithContext(ctx).
		Preload("Program").
		Where("teacher_id = ? AND is_active = true AND deleted_at IS NULL", teacherID).
		Order("day_of_week, start_time").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// todayWeekday maps time.Weekday (Sunday=0) onto the schedule
// convention (Monday=0 .. Sunday=6).
func todayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func (tr *teacherRepository) GetDashboard(ctx context.Context, userID int) (*domain.TeacherDashboard, error) {
	teacher, err := tr.teacherByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	schedules, err := tr.activeSchedules(ctx, teacher.TeacherID)
	if err != nil {
		return nil, err
	}

	today := todayWeekday(time.Now())
	todayClasses := make([]domain.Schedule, 0)
	for _, s := range schedules {
		if s.DayOfWeek == today {
			todayClasses = append(todayClasses, s)
		}
	}

	var students int64
	err = tr.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Joins("JOIN schedules ON schedules.schedule_id = enrollments.schedule_id").
		Where("schedules.teacher_id = ? AND enrollments.status = ? AND enrollments.deleted_at IS NULL",
			teacher.TeacherID, domain.EnrollmentActive).
		Count(&students).Error
	if err != nil {
		return nil, err
	}

	return &domain.TeacherDashboard{
		Teacher:      *teacher,
		TodayClasses: todayClasses,
		Stats: domain.TeacherStats{
			TodayClasses:    len(todayClasses),
			Students:        students,
			AssignedClasses: len(schedules),
		},
	}, nil
}

func (tr *teacherRepository) GetWeeklySchedule(ctx context.Context, userID int) (*[]domain.DaySchedules, error) {
	teacher, err := tr.teacherByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	schedules, err := tr.activeSchedules(ctx, teacher.TeacherID)
	if err != nil {
		return nil, err
	}

	week := make([]domain.DaySchedules, 7)
	for day := 0; day < 7; day++ {
		week[day] = domain.DaySchedules{
			DayName:   (&domain.Schedule{DayOfWeek: day}).DayName(),
			Schedules: []domain.Schedule{},
		}
	}
	for _, s := range schedules {
		if s.DayOfWeek >= 0 && s.DayOfWeek <= 6 {
			week[s.DayOfWeek].Schedules = append(week[s.DayOfWeek].Schedules, s)
		}
	}
	return &week, nil
}

func (tr *teacherRepository) GetRoster(ctx context.Context, userID int) (*[]domain.ClassRoster, error) {
	teacher, err := tr.teacherByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var enrollments []domain.Enrollment
	err = tr.db.WithContext(ctx).
		Preload("Child").
		Preload("Schedule").
		Preload("Schedule.Program").
		Joins("JOIN schedules ON schedules.schedule_id = enrollments.schedule_id").
		Where("schedules.teacher_id = ? AND enrollments.status = ? AND enrollments.deleted_at IS NULL",
			teacher.TeacherID, domain.EnrollmentActive).
		Order("schedules.day_of_week, schedules.start_time").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}

	var rosters []domain.ClassRoster
	index := make(map[int]int)
	for _, e := range enrollments {
		pos, ok := index[e.ScheduleID]
		if !ok {
			pos = len(rosters)
			index[e.ScheduleID] = pos
			rosters = append(rosters, domain.ClassRoster{
				Schedule: e.Schedule,
				Label: fmt.Sprintf("%s - %s %s",
					e.Schedule.Program.Name, e.Schedule.DayName(), e.Schedule.TimeRange()),
				Students: []domain.Enrollment{},
			})
		}
		rosters[pos].Students = append(rosters[pos].Students, e)
	}
	if rosters == nil {
		rosters = []domain.ClassRoster{}
	}
	return &rosters, nil
}

// RecordAttendance upserts the one status row per (enrollment, date).
// Only enrollments on the teacher's own schedules are writable.
func (tr *teacherRepository) RecordAttendance(ctx context.Context, userID int, payload *domain.AttendancePayload) (*domain.Attendance, error) {
	teacher, err := tr.teacherByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	classDate, err := parseDate(payload.ClassDate)
	if err != nil {
		return nil, err
	}

	var enrollment domain.Enrollment
	err = tr.db.WithContext(ctx).
		Joins("JOIN schedules ON schedules.schedule_id = enrollments.schedule_id").
		Where("enrollments.enrollment_id = ? AND schedules.teacher_id = ? AND enrollments.deleted_at IS NULL",
			payload.EnrollmentID, teacher.TeacherID).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("enrollment not found on your schedules")
		}
		return nil, err
	}

	tx := tr.db.WithContext(ctx).Begin()

	var attendance domain.Attendance
	err = tx.Where("enrollment_id = ? AND class_date = ? AND deleted_at IS NULL",
		enrollment.EnrollmentID, classDate).
		First(&attendance).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return nil, err
	}

	if attendance.AttendanceID > 0 {
		attendance.Status = payload.Status
		attendance.Notes = payload.Notes
		if err := tx.Save(&attendance).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	} else {
		attendance = domain.Attendance{
			EnrollmentID: enrollment.EnrollmentID,
			ClassDate:    classDate,
			Status:       payload.Status,
			Notes:        payload.Notes,
		}
		if err := tx.Create(&attendance).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (tr *teacherRepository) GetAttendanceLog(ctx context.Context, userID, scheduleID int, classDate string) (*[]domain.Attendance, error) {
	teacher, err := tr.teacherByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(classDate)
	if err != nil {
		return nil, err
	}

	var schedule domain.Schedule
	err = tr.db.WithContext(ctx).
		Where("schedule_id = ? AND teacher_id = ? AND deleted_at IS NULL", scheduleID, teacher.TeacherID).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}

	var records []domain.Attendance
	err = tr.db.WithContext(ctx).
		Preload("Enrollment").
		Preload("Enrollment.Child").
		Joins("JOIN enrollments ON enrollments.enrollment_id = attendances.enrollment_id").
		Where("enrollments.schedule_id = ? AND attendances.class_date = ? AND attendances.deleted_at IS NULL",
			schedule.ScheduleID, date).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return &records, nil
}
