package delivery

import (
	"errors"
	"kidfit/config"
	"kidfit/domain"
	"kidfit/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
)

type centerHandler struct {
	uc     domain.CenterUseCase
	mailer domain.Mailer
	log    func(err error, op string)
}

func NewCenterHandlerDeploy(app *fiber.App, useCase domain.CenterUseCase, mailer domain.Mailer) {
	handler := &centerHandler{
		uc:     useCase,
		mailer: mailer,
		log: func(err error, op string) {
			config.GetLogrusInstance().WithError(err).Warnf("%s: email send failed", op)
		},
	}

	route := app.Group("/center", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleCenter))
	route.Get("/dashboard", handler.Dashboard)
	route.Put("/profile", handler.UpdateProfile)
	route.Get("/programs", handler.ListPrograms)
	route.Post("/programs", handler.AddProgram)
	route.Put("/programs/:id", handler.EditProgram)
	route.Delete("/programs/:id", handler.DeleteProgram)
	route.Get("/schedules", handler.ListSchedules)
	route.Post("/schedules", handler.AddSchedule)
	route.Put("/schedules/:id", handler.EditSchedule)
	route.Delete("/schedules/:id", handler.DeleteSchedule)
	route.Get("/enrollments", handler.ListEnrollments)
	route.Post("/enrollments/:id/approve", handler.ApproveEnrollment)
	route.Put("/enrollments/:id/status", handler.UpdateEnrollmentStatus)
	route.Get("/teachers", handler.ListTeachers)
	route.Post("/invite", handler.InviteTeacher)
	route.Get("/invite-qr", handler.InviteQR)
}

func (ch *centerHandler) Dashboard(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	dashboard, err := ch.uc.GetDashboard(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusInternalServerError, "CenterDashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load dashboard. Please try again.",
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "CenterDashboard")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    dashboard,
	})
}

func (ch *centerHandler) UpdateProfile(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	var payload domain.CenterProfilePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "UpdateProfile")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
	if _, err := govalidator.ValidateStruct(payload); err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "UpdateProfile")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	photoURL, err := savePhoto(c, "centers")
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "UpdateProfile")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
	payload.PhotoURL = photoURL

	center, err := ch.uc.UpdateProfile(c.Context(), userToken.UserID, &payload)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "UpdateProfile")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	message := "Profile updated successfully!"
	if !center.Geocoded() {
		message += " Note: we could not place your address on the map."
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "UpdateProfile")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    center,
	})
}

func (ch *centerHandler) ListPrograms(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	programs, err := ch.uc.GetPrograms(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusInternalServerError, "ListPrograms")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load programs. Please try again.",
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "ListPrograms")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    programs,
	})
}

// Number and flag fields arrive as multipart form values, so they are
// parsed leniently here instead of through BodyParser.
func (ch *centerHandler) programPayload(c *fiber.Ctx) (*domain.ProgramPayload, error) {
	var payload domain.ProgramPayload
	if err := c.BodyParser(&payload); err != nil {
		return nil, err
	}
	payload.PricePerMonth = formFloatPtr(c, "price_per_month")
	payload.PricePerSession = formFloatPtr(c, "price_per_session")
	payload.DurationMinutes = formIntPtr(c, "duration_minutes")
	payload.MinAge = formIntPtr(c, "min_age")
	payload.MaxAge = formIntPtr(c, "max_age")
	if maxStudents := formIntPtr(c, "max_students"); maxStudents != nil {
		payload.MaxStudents = *maxStudents
	}
	payload.IsActive = formBool(c, "is_active")

	if _, err := govalidator.ValidateStruct(payload); err != nil {
		return nil, err
	}

	photoURL, err := savePhoto(c, "programs")
	if err != nil {
		return nil, err
	}
	payload.PhotoURL = photoURL

	return &payload, nil
}

func (ch *centerHandler) AddProgram(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	payload, err := ch.programPayload(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "AddProgram")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	program, err := ch.uc.CreateProgram(c.Context(), userToken.UserID, payload)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "AddProgram")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusCreated, "AddProgram")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": program.Name + " has been created!",
		"data":    program,
	})
}

func (ch *centerHandler) EditProgram(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	programID, err := intParam(c, "id")
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "EditProgram")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	payload, err := ch.programPayload(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "EditProgram")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	program, err := ch.uc.UpdateProgram(c.Context(), userToken.UserID, programID, payload)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusNotFound, "EditProgram")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "EditProgram")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": program.Name + " updated successfully!",
		"data":    program,
	})
}

func (ch *centerHandler) DeleteProgram(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	programID, err := intParam(c, "id")
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "DeleteProgram")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if err := ch.uc.DeleteProgram(c.Context(), userToken.UserID, programID); err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "DeleteProgram")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "DeleteProgram")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Program has been removed.",
	})
}

func (ch *centerHandler) ListSchedules(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	schedules, err := ch.uc.GetSchedules(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusInternalServerError, "ListSchedules")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load schedules. Please try again.",
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "ListSchedules")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    schedules,
	})
}

func (ch *centerHandler) schedulePayload(c *fiber.Ctx) (*domain.SchedulePayload, error) {
	var payload domain.SchedulePayload
	if err := c.BodyParser(&payload); err != nil {
		return nil, err
	}
	payload.MaxStudents = formIntPtr(c, "max_students")
	payload.IsActive = formBool(c, "is_active")

	if _, err := govalidator.ValidateStruct(payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (ch *centerHandler) AddSchedule(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	payload, err := ch.schedulePayload(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "AddSchedule")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	schedule, err := ch.uc.CreateSchedule(c.Context(), userToken.UserID, payload)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "AddSchedule")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusCreated, "AddSchedule")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Class scheduled for " + schedule.DayName() + " " + schedule.TimeRange(),
		"data":    schedule,
	})
}

func (ch *centerHandler) EditSchedule(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	scheduleID, err := intParam(c, "id")
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "EditSchedule")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	payload, err := ch.schedulePayload(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "EditSchedule")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	schedule, err := ch.uc.UpdateSchedule(c.Context(), userToken.UserID, scheduleID, payload)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrScheduleNotFound) {
			status = fiber.StatusNotFound
		}
		config.PrintLogInfo(&userToken.Name, status, "EditSchedule")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "EditSchedule")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Class updated successfully!",
		"data":    schedule,
	})
}

func (ch *centerHandler) DeleteSchedule(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	scheduleID, err := intParam(c, "id")
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "DeleteSchedule")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if err := ch.uc.DeleteSchedule(c.Context(), userToken.UserID, scheduleID); err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "DeleteSchedule")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "DeleteSchedule")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Class has been removed.",
	})
}

func (ch *centerHandler) ListEnrollments(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	enrollments, err := ch.uc.GetEnrollments(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusInternalServerError, "CenterEnrollments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load enrollments. Please try again.",
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "CenterEnrollments")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    enrollments,
	})
}

func (ch *centerHandler) ApproveEnrollment(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	enrollmentID, err := intParam(c, "id")
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "ApproveEnrollment")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	enrollment, err := ch.uc.ApproveEnrollment(c.Context(), userToken.UserID, enrollmentID)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "ApproveEnrollment")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if err := ch.mailer.SendEnrollmentStatusUpdate(enrollment, domain.EnrollmentActive); err != nil {
		ch.log(err, "ApproveEnrollment")
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "ApproveEnrollment")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Enrollment approved for " + enrollment.Child.Name,
		"data":    enrollment,
	})
}

func (ch *centerHandler) UpdateEnrollmentStatus(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	enrollmentID, err := intParam(c, "id")
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "UpdateEnrollmentStatus")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	var body struct {
		Status string `json:"status" form:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "UpdateEnrollmentStatus")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	enrollment, err := ch.uc.UpdateEnrollmentStatus(c.Context(), userToken.UserID, enrollmentID, body.Status)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "UpdateEnrollmentStatus")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if err := ch.mailer.SendEnrollmentStatusUpdate(enrollment, enrollment.Status); err != nil {
		ch.log(err, "UpdateEnrollmentStatus")
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "UpdateEnrollmentStatus")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Enrollment for " + enrollment.Child.Name + " is now " + enrollment.Status,
		"data":    enrollment,
	})
}

func (ch *centerHandler) ListTeachers(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	teachers, err := ch.uc.GetTeachers(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusInternalServerError, "ListTeachers")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load teachers. Please try again.",
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "ListTeachers")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    teachers,
	})
}

func (ch *centerHandler) InviteTeacher(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	var body struct {
		Email string `json:"email" form:"email" valid:"required~Email is required,email~Invalid email"`
	}
	if err := c.BodyParser(&body); err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "InviteTeacher")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
	if _, err := govalidator.ValidateStruct(body); err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "InviteTeacher")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	center, err := ch.uc.GetInviteCenter(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusInternalServerError, "InviteTeacher")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to send invitation. Please try again.",
		})
	}

	if err := ch.mailer.SendTeacherInvitation(center, body.Email); err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusInternalServerError, "InviteTeacher")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to send invitation email. Please try again.",
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "InviteTeacher")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Invitation sent to " + body.Email,
	})
}

func (ch *centerHandler) InviteQR(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	center, err := ch.uc.GetInviteCenter(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusInternalServerError, "InviteQR")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate QR code. Please try again.",
		})
	}

	link := config.GetBaseURL() + "/auth/register/teacher?invite_code=" + center.InviteCode
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusInternalServerError, "InviteQR")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate QR code. Please try again.",
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "InviteQR")
	c.Type("png")
	return c.Status(fiber.StatusOK).Send(png)
}
