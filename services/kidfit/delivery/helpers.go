package delivery

import (
	"fmt"
	"kidfit/config"
	"kidfit/domain"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func claimsFrom(c *fiber.Ctx) *domain.Claims {
	claims, _ := c.Locals("user").(*domain.Claims)
	return claims
}

func intParam(c *fiber.Ctx, name string) (int, error) {
	v, err := strconv.Atoi(c.Params(name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return v, nil
}

// Lenient form-number parsing: absent or malformed values become nil
// rather than failing the whole submission.
func formFloatPtr(c *fiber.Ctx, name string) *float64 {
	raw := c.FormValue(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func formIntPtr(c *fiber.Ctx, name string) *int {
	raw := c.FormValue(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func formBool(c *fiber.Ctx, name string) bool {
	switch c.FormValue(name) {
	case "", "0", "false", "off":
		return false
	}
	return true
}

// savePhoto stores the optional "photo" multipart field under the
// given kind and returns its relative path, or "" when no file came.
func savePhoto(c *fiber.Ctx, kind string) (string, error) {
	file, err := c.FormFile("photo")
	if err != nil {
		return "", nil
	}
	return domain.SaveUpload(file, config.GetUploadRoot(), kind)
}
