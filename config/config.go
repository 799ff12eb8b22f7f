package config

import (
	"fmt"
	"os"
)

func GetJWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func GetUploadRoot() string {
	env := os.Getenv("UPLOAD_ROOT")
	if env != "" {
		return env
	}
	return "uploads"
}

func GetBaseURL() string {
	env := os.Getenv("BASE_URL")
	if env != "" {
		return env
	}
	return "http://localhost:8000"
}

func GetGeocodeCity() string {
	env := os.Getenv("GEOCODE_CITY")
	if env != "" {
		return env
	}
	return "Astana"
}

func GetGeocodeCountry() string {
	env := os.Getenv("GEOCODE_COUNTRY")
	if env != "" {
		return env
	}
	return "Kazakhstan"
}

// AppDebug gates the admin-only utilities.
func AppDebug() bool {
	return os.Getenv("APP_DEBUG") != ""
}

func getRequired(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("empty %s", key)
	}
	return v, nil
}
