package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "neighbortask.com/neighbortask/internal/data_models"
)

func ValidateApplyRequest(r *dto.ApplyRequest) error {
	if r.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	if r.ProposedPrice <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "proposed_price must be greater than 0")
	}
	return nil
}

// ValidateSendMessageRequest checks the receiver only. Content is left to the
// service, where whitespace-only input is a deliberate no-op.
func ValidateSendMessageRequest(r *dto.SendMessageRequest) error {
	if r.ReceiverID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "receiver_id is required")
	}
	return nil
}

func ValidateShareContactRequest(r *dto.ShareContactRequest) error {
	if r.ReceiverID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "receiver_id is required")
	}
	return nil
}
