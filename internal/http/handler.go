package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"neighbortask.com/neighbortask/internal/constants"
	dto "neighbortask.com/neighbortask/internal/data_models"
	apperrors "neighbortask.com/neighbortask/internal/errors"
	middleware "neighbortask.com/neighbortask/internal/http/middlewares"
	"neighbortask.com/neighbortask/internal/http/validators"
	"neighbortask.com/neighbortask/internal/services"
)

type Handler struct {
	auth        *services.AuthService
	tasks       *services.TaskService
	connections *services.ConnectionService
	messages    *services.MessageService
	notifier    *services.NotifierService
}

func NewHandler(
	auth *services.AuthService,
	tasks *services.TaskService,
	connections *services.ConnectionService,
	messages *services.MessageService,
	notifier *services.NotifierService,
) *Handler {
	return &Handler{
		auth:        auth,
		tasks:       tasks,
		connections: connections,
		messages:    messages,
		notifier:    notifier,
	}
}

// httpError maps service errors onto echo errors using the status carried by
// typed exceptions; anything else is a 500.
func httpError(err error) error {
	var ex *apperrors.Exception
	if errors.As(err, &ex) {
		return echo.NewHTTPError(ex.StatusCode, ex.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	user, token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: *user})
}

func (h *Handler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateSignupRequest(&req); err != nil {
		return err
	}

	user, token, err := h.auth.Signup(c.Request().Context(), req.Email, req.Password, req.Name, req.Location)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: *user})
}

func (h *Handler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context()); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.SessionUser(c))
}

func (h *Handler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, constants.Categories)
}

func (h *Handler) BrowseTasks(c echo.Context) error {
	tasks, err := h.tasks.Browse(
		c.Request().Context(),
		c.QueryParam("q"),
		c.QueryParam("category"),
		c.QueryParam("status"),
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) TaskDetails(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	task, apps, err := h.tasks.Details(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.TaskDetailsResponse{Task: *task, Applications: apps})
}

func (h *Handler) PostTask(c echo.Context) error {
	var req dto.PostTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidatePostTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.tasks.Post(c.Request().Context(), middleware.SessionUser(c), services.PostTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Deadline:    req.Deadline,
		Location:    req.Location,
		Images:      req.Images,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) Apply(c echo.Context) error {
	var req dto.ApplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateApplyRequest(&req); err != nil {
		return err
	}

	app, err := h.tasks.Apply(c.Request().Context(), middleware.SessionUser(c), c.Param("id"), services.ApplyInput{
		Message:       req.Message,
		ProposedPrice: req.ProposedPrice,
		Phone:         req.Phone,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, app)
}

func (h *Handler) AcceptApplication(c echo.Context) error {
	conn, err := h.tasks.Accept(c.Request().Context(), middleware.SessionUser(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, conn)
}

func (h *Handler) ProfileTasks(c echo.Context) error {
	posted, applied, err := h.tasks.ProfileTasks(c.Request().Context(), middleware.SessionUser(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ProfileTasksResponse{Posted: posted, Applied: applied})
}

func (h *Handler) Connections(c echo.Context) error {
	views, err := h.connections.ListForUser(c.Request().Context(), middleware.SessionUser(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ConnectionsResponse{Count: len(views), Connections: views})
}

func (h *Handler) CompleteConnection(c echo.Context) error {
	conn, err := h.connections.Complete(c.Request().Context(), middleware.SessionUser(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, conn)
}

func (h *Handler) Thread(c echo.Context) error {
	msgs, err := h.messages.Thread(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":    len(msgs),
		"messages": msgs,
	})
}

func (h *Handler) SendMessage(c echo.Context) error {
	var req dto.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateSendMessageRequest(&req); err != nil {
		return err
	}

	msg, err := h.messages.Send(c.Request().Context(), middleware.SessionUser(c), c.Param("id"), req.ReceiverID, req.Content)
	if err != nil {
		return httpError(err)
	}
	if msg == nil {
		// Whitespace-only content: thread unchanged.
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusCreated, msg)
}

func (h *Handler) ShareContact(c echo.Context) error {
	var req dto.ShareContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateShareContactRequest(&req); err != nil {
		return err
	}

	msg, err := h.messages.ShareContact(c.Request().Context(), middleware.SessionUser(c), c.Param("id"), req.ReceiverID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, msg)
}

func (h *Handler) Notifications(c echo.Context) error {
	ns, err := h.notifier.History(c.Request().Context(), middleware.SessionUser(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":         len(ns),
		"notifications": ns,
	})
}
