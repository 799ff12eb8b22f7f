package delivery

import (
	"errors"
	"kidfit/config"
	"kidfit/domain"
	"kidfit/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type parentHandler struct {
	uc     domain.ParentUseCase
	mailer domain.Mailer
	log    func(err error, op string)
}

func NewParentHandlerDeploy(app *fiber.App, useCase domain.ParentUseCase, mailer domain.Mailer) {
	handler := &parentHandler{
		uc:     useCase,
		mailer: mailer,
		log: func(err error, op string) {
			config.GetLogrusInstance().WithError(err).Warnf("%s: email send failed", op)
		},
	}

	parentOnly := []fiber.Handler{middleware.AuthRequired(), middleware.RoleRequired(domain.RoleParent)}

	route := app.Group("/parent", parentOnly...)
	route.Get("/dashboard", handler.Dashboard)
	route.Get("/children", handler.ListChildren)
	route.Post("/children", handler.AddChild)
	route.Put("/children/:id", handler.EditChild)
	route.Delete("/children/:id", handler.DeleteChild)
	route.Get("/enrollments", handler.ListEnrollments)
	route.Post("/enrollments/:scheduleID/children/:childID", handler.Enroll)
	route.Post("/enrollments/:id/cancel", handler.CancelEnrollment)

	app.Get("/api/children/:id/enrollments", append(parentOnly, handler.ChildEnrollments)...)
	app.Get("/api/available-programs/:childID", append(parentOnly, handler.AvailablePrograms)...)
}

func (ph *parentHandler) Dashboard(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	dashboard, err := ph.uc.GetDashboard(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusInternalServerError, "ParentDashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load dashboard. Please try again.",
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "ParentDashboard")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    dashboard,
	})
}

func (ph *parentHandler) ListChildren(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	children, err := ph.uc.GetChildren(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusInternalServerError, "ListChildren")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load children. Please try again.",
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "ListChildren")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    children,
	})
}

func (ph *parentHandler) childPayload(c *fiber.Ctx) (*domain.ChildPayload, error) {
	var payload domain.ChildPayload
	if err := c.BodyParser(&payload); err != nil {
		return nil, err
	}
	if _, err := govalidator.ValidateStruct(payload); err != nil {
		return nil, err
	}

	photoURL, err := savePhoto(c, "children")
	if err != nil {
		return nil, err
	}
	payload.PhotoURL = photoURL

	return &payload, nil
}

func (ph *parentHandler) AddChild(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	payload, err := ph.childPayload(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "AddChild")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	child, err := ph.uc.CreateChild(c.Context(), userToken.UserID, payload)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "AddChild")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusCreated, "AddChild")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": child.Name + " has been added successfully!",
		"data":    child,
	})
}

func (ph *parentHandler) EditChild(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	childID, err := intParam(c, "id")
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "EditChild")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	payload, err := ph.childPayload(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "EditChild")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	child, err := ph.uc.UpdateChild(c.Context(), userToken.UserID, childID, payload)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrChildNotFound) {
			status = fiber.StatusNotFound
		}
		config.PrintLogInfo(&userToken.Name, status, "EditChild")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "EditChild")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": child.Name + " updated successfully!",
		"data":    child,
	})
}

func (ph *parentHandler) DeleteChild(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	childID, err := intParam(c, "id")
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "DeleteChild")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if err := ph.uc.DeleteChild(c.Context(), userToken.UserID, childID); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrChildNotFound) {
			status = fiber.StatusNotFound
		}
		config.PrintLogInfo(&userToken.Name, status, "DeleteChild")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "DeleteChild")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Child has been removed.",
	})
}

func (ph *parentHandler) ListEnrollments(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	enrollments, err := ph.uc.GetEnrollments(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusInternalServerError, "ListEnrollments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load enrollments. Please try again.",
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "ListEnrollments")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    enrollments,
	})
}

func (ph *parentHandler) Enroll(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	scheduleID, err := intParam(c, "scheduleID")
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "Enroll")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
	childID, err := intParam(c, "childID")
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "Enroll")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	enrollment, err := ph.uc.Enroll(c.Context(), userToken.UserID, scheduleID, childID)
	if err != nil {
		status := fiber.StatusInternalServerError
		message := "Enrollment failed. Please try again."
		switch {
		case errors.Is(err, domain.ErrChildNotFound), errors.Is(err, domain.ErrScheduleNotFound):
			status, message = fiber.StatusNotFound, err.Error()
		case domain.IsEligibilityError(err):
			status, message = fiber.StatusBadRequest, err.Error()
		}
		config.PrintLogInfo(&userToken.Name, status, "Enroll")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": message,
		})
	}

	// Confirmation email failure never fails the enrollment.
	if err := ph.mailer.SendEnrollmentConfirmation(enrollment); err != nil {
		ph.log(err, "Enroll")
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusCreated, "Enroll")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": enrollment.Child.Name + " has been enrolled in " + enrollment.Schedule.Program.Name + "!",
		"data":    enrollment,
	})
}

func (ph *parentHandler) CancelEnrollment(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	enrollmentID, err := intParam(c, "id")
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "CancelEnrollment")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	enrollment, err := ph.uc.CancelEnrollment(c.Context(), userToken.UserID, enrollmentID)
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusNotFound, "CancelEnrollment")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if err := ph.mailer.SendEnrollmentStatusUpdate(enrollment, domain.EnrollmentCancelled); err != nil {
		ph.log(err, "CancelEnrollment")
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "CancelEnrollment")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Enrollment cancelled for " + enrollment.Child.Name,
	})
}

func (ph *parentHandler) ChildEnrollments(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	childID, err := intParam(c, "id")
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "ChildEnrollments")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	enrollments, err := ph.uc.GetChildEnrollments(c.Context(), userToken.UserID, childID)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrChildNotFound) {
			status = fiber.StatusNotFound
		}
		config.PrintLogInfo(&userToken.Name, status, "ChildEnrollments")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "ChildEnrollments")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":     true,
		"enrollments": enrollments,
	})
}

func (ph *parentHandler) AvailablePrograms(c *fiber.Ctx) error {
	userToken := claimsFrom(c)

	childID, err := intParam(c, "childID")
	if err != nil {
		config.PrintLogInfo(&userToken.Name, fiber.StatusBadRequest, "AvailablePrograms")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	programs, err := ph.uc.GetAvailablePrograms(c.Context(), userToken.UserID, childID)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrChildNotFound) {
			status = fiber.StatusNotFound
		}
		config.PrintLogInfo(&userToken.Name, status, "AvailablePrograms")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Name, fiber.StatusOK, "AvailablePrograms")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"programs": programs,
	})
}
