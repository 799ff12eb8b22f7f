package delivery

import (
	"fmt"
	"kidfit/config"
	"kidfit/domain"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type publicHandler struct {
	uc       domain.PublicUseCase
	geocoder domain.Geocoder
}

func NewPublicHandlerDeploy(app *fiber.App, useCase domain.PublicUseCase, geocoder domain.Geocoder) {
	handler := &publicHandler{uc: useCase, geocoder: geocoder}

	app.Get("/health", handler.Health)

	api := app.Group("/api")
	api.Get("/centers", handler.SearchCenters)
	api.Get("/centers/:id/stats", handler.CenterStats)
	api.Get("/centers/:id", handler.CenterProfile)
	api.Get("/programs/:id", handler.Program)
	api.Get("/categories", handler.Categories)
	api.Get("/categories/:id/path", handler.CategoryPath)
	api.Get("/geocode", handler.Geocode)
	api.Get("/distance", handler.Distance)

	app.Post("/admin/geocode-centers", handler.GeocodeCenters)
}

func (ph *publicHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"service": "kidfit",
	})
}

func (ph *publicHandler) SearchCenters(c *fiber.Ctx) error {
	filter := domain.CenterSearchFilter{Search: c.Query("search")}
	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			config.PrintLogInfo(nil, fiber.StatusBadRequest, "SearchCenters")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "invalid category_id",
			})
		}
		filter.CategoryID = &categoryID
	}

	centers, err := ph.uc.SearchCenters(c.Context(), &filter)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusInternalServerError, "SearchCenters")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load centers. Please try again.",
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "SearchCenters")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"centers": centers,
	})
}

func (ph *publicHandler) CenterStats(c *fiber.Ctx) error {
	centerID, err := intParam(c, "id")
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "CenterStats")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	stats, err := ph.uc.GetCenterStats(c.Context(), centerID)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusNotFound, "CenterStats")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "CenterStats")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

func (ph *publicHandler) CenterProfile(c *fiber.Ctx) error {
	centerID, err := intParam(c, "id")
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "CenterProfile")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	profile, err := ph.uc.GetCenterProfile(c.Context(), centerID)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusNotFound, "CenterProfile")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "CenterProfile")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    profile,
	})
}

func (ph *publicHandler) Program(c *fiber.Ctx) error {
	programID, err := intParam(c, "id")
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "PublicProgram")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	program, err := ph.uc.GetProgram(c.Context(), programID)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusNotFound, "PublicProgram")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "PublicProgram")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    program,
	})
}

func (ph *publicHandler) Categories(c *fiber.Ctx) error {
	tree, err := ph.uc.GetCategoryTree(c.Context())
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusInternalServerError, "Categories")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load categories. Please try again.",
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "Categories")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"categories": tree,
	})
}

func (ph *publicHandler) CategoryPath(c *fiber.Ctx) error {
	categoryID, err := intParam(c, "id")
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "CategoryPath")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	path, err := ph.uc.GetCategoryPath(c.Context(), categoryID)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusNotFound, "CategoryPath")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "CategoryPath")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"path":    path,
	})
}

func (ph *publicHandler) Geocode(c *fiber.Ctx) error {
	address := c.Query("address")
	if address == "" {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Geocode")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "address query parameter is required",
		})
	}

	coords, err := ph.geocoder.Geocode(c.Context(), address)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusInternalServerError, "Geocode")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Geocoding failed. Please try again.",
		})
	}
	if coords == nil {
		config.PrintLogInfo(nil, fiber.StatusNotFound, "Geocode")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Address not found",
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "Geocode")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"latitude":  coords.Latitude,
		"longitude": coords.Longitude,
	})
}

func (ph *publicHandler) Distance(c *fiber.Ctx) error {
	parse := func(name string) (float64, error) {
		return strconv.ParseFloat(c.Query(name), 64)
	}
	lat1, err1 := parse("lat1")
	lon1, err2 := parse("lon1")
	lat2, err3 := parse("lat2")
	lon2, err4 := parse("lon2")
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Distance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid coordinates",
		})
	}

	km := domain.Distance(
		domain.Coordinates{Latitude: lat1, Longitude: lon1},
		domain.Coordinates{Latitude: lat2, Longitude: lon2},
	)

	config.PrintLogInfo(nil, fiber.StatusOK, "Distance")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"distance_km":   math.Round(km*100) / 100,
		"distance_text": fmt.Sprintf("%.1f km", km),
	})
}

func (ph *publicHandler) GeocodeCenters(c *fiber.Ctx) error {
	if !config.AppDebug() {
		config.PrintLogInfo(nil, fiber.StatusForbidden, "GeocodeCenters")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Not available",
		})
	}

	updated, err := ph.uc.GeocodeMissingCenters(c.Context())
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusInternalServerError, "GeocodeCenters")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "GeocodeCenters")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Geocoded %d centers", updated),
	})
}
