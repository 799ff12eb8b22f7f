package delivery

import (
	"kidfit/config"
	"kidfit/domain"
	"kidfit/middleware"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type authHandler struct {
	uc domain.AuthUseCase
}

func NewAuthHandlerDeploy(app *fiber.App, useCase domain.AuthUseCase) {
	handler := &authHandler{
		uc: useCase,
	}

	route := app.Group("/auth")
	route.Post("/register/parent", handler.RegisterParent)
	route.Post("/register/center", handler.RegisterCenter)
	route.Post("/register/teacher", handler.RegisterTeacher)
	route.Post("/login", handler.Login)
	route.Post("/logout", handler.Logout)
}

func (ah *authHandler) RegisterParent(c *fiber.Ctx) error {
	var req domain.RegisterParentRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "RegisterParent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid data",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "RegisterParent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	user, err := ah.uc.RegisterParent(c.Context(), &req)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "RegisterParent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(&user.Name, fiber.StatusCreated, "RegisterParent")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Welcome " + user.Name + "! Your parent account has been created successfully.",
		"data":    user,
	})
}

func (ah *authHandler) RegisterCenter(c *fiber.Ctx) error {
	var req domain.RegisterCenterRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "RegisterCenter")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid data",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "RegisterCenter")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	center, err := ah.uc.RegisterCenter(c.Context(), &req)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "RegisterCenter")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	message := "Welcome " + center.CenterName + "! Your center has been registered successfully. Your teacher invite code is: " + center.InviteCode
	if !center.Geocoded() {
		message += " Note: the address could not be located; please update your profile with a more specific address."
	}

	config.PrintLogInfo(&center.CenterName, fiber.StatusCreated, "RegisterCenter")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    center,
	})
}

func (ah *authHandler) RegisterTeacher(c *fiber.Ctx) error {
	var req domain.RegisterTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "RegisterTeacher")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid data",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "RegisterTeacher")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	teacher, err := ah.uc.RegisterTeacher(c.Context(), &req)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "RegisterTeacher")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(&teacher.User.Name, fiber.StatusCreated, "RegisterTeacher")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Welcome " + teacher.User.Name + "! You have successfully joined " + teacher.Center.CenterName + " as a teacher.",
		"data":    teacher,
	})
}

func (ah *authHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid data",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	user, err := ah.uc.Login(c.Context(), &req)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusUnauthorized, "Login")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	token, err := middleware.GenerateJWT(user.UserID, user.Email, user.Name, user.Role)
	if err != nil {
		config.PrintLogInfo(&user.Name, fiber.StatusInternalServerError, "Login")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "failed to generate token",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	config.PrintLogInfo(&user.Name, fiber.StatusOK, "Login")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Welcome back, " + user.Name + "!",
		"data": domain.LoginResponse{
			Token: token,
			Role:  user.Role,
			Name:  user.Name,
		},
	})
}

func (ah *authHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	config.PrintLogInfo(nil, fiber.StatusOK, "Logout")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "You have been logged out successfully.",
	})
}
