package delivery

import (
	"kidfit/config"
	"kidfit/domain"
	"kidfit/middleware"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type teacherHandler struct {
	uc domain.TeacherUseCase
}

func NewTeacherHandlerDeploy(app *fiber.App, useCase domain.TeacherUseCase) {
	handler := &teacherHandler{uc: useCase}

	route := app.Group("/teacher", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleTeacher))
	route.Get("/dashboard", handler.Dashboard)
	route.Get("/schedule", handler.WeeklySchedule)
	route.Get("/students", handler.Roster)
	route.Post("/attendance", handler.RecordAttendance)
	route.Get("/attendance", handler.AttendanceLog)
}

func (th *teacherHandler) Dashboard(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	dashboard, err := th.uc.GetDashboard(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusInternalServerError, "TeacherDashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load dashboard. Please try again.",
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "TeacherDashboard")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    dashboard,
	})
}

func (th *teacherHandler) WeeklySchedule(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	week, err := th.uc.GetWeeklySchedule(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusInternalServerError, "WeeklySchedule")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load schedule. Please try again.",
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "WeeklySchedule")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    week,
	})
}

func (th *teacherHandler) Roster(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	roster, err := th.uc.GetRoster(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusInternalServerError, "Roster")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load students. Please try again.",
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "Roster")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    roster,
	})
}

func (th *teacherHandler) RecordAttendance(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	var payload domain.AttendancePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "RecordAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
	if _, err := govalidator.ValidateStruct(payload); err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "RecordAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	attendance, err := th.uc.RecordAttendance(c.Context(), userToken.UserID, &payload)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "RecordAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "RecordAttendance")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Attendance recorded.",
		"data":    attendance,
	})
}

func (th *teacherHandler) AttendanceLog(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	scheduleID, err := strconv.Atoi(c.Query("schedule_id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "AttendanceLog")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "schedule_id query parameter is required",
		})
	}

	log, err := th.uc.GetAttendanceLog(c.Context(), userToken.UserID, scheduleID, c.Query("date"))
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "AttendanceLog")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "AttendanceLog")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    log,
	})
}
