package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "neighbortask.com/neighbortask/internal/data_models"
)

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if r.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	return nil
}

func ValidateSignupRequest(r *dto.SignupRequest) error {
	if r.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	if r.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if r.Location == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "location is required")
	}
	return nil
}
