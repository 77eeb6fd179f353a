package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"neighbortask.com/neighbortask/internal/constants"
	dto "neighbortask.com/neighbortask/internal/data_models"
)

func ValidatePostTaskRequest(r *dto.PostTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}
	if !constants.IsPostableCategory(r.Category) {
		return echo.NewHTTPError(http.StatusBadRequest, "category must be one of the listed categories")
	}
	if r.Price <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be greater than 0")
	}
	if r.Deadline == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "deadline is required")
	}
	if r.Location == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "location is required")
	}
	return nil
}
