package handler

import (
	"log/slog"
	"net/http"

	"petclinic/internal/delivery/http/response"
	"petclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OwnerHandler holds dependencies for owner-related handlers.
type OwnerHandler struct {
	uc     usecase.OwnerUsecase
	logger *slog.Logger
}

// NewOwnerHandler is the constructor for OwnerHandler, injected by Fx.
func NewOwnerHandler(uc usecase.OwnerUsecase, logger *slog.Logger) *OwnerHandler {
	return &OwnerHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAll returns every registered owner.
func (h *OwnerHandler) GetAll(c echo.Context) error {
	owners, err := h.uc.GetAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, owners, "")
}

// GetOne returns a single owner by id.
func (h *OwnerHandler) GetOne(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner id")
	}

	owner, err := h.uc.GetOneByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, owner, "")
}

// Create handles owner registration.
func (h *OwnerHandler) Create(c echo.Context) error {
	var input *usecase.OwnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owner input")
	}

	owner, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, owner, "Owner created successfully")
}

// Update modifies an existing owner.
func (h *OwnerHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner id")
	}

	var input *usecase.OwnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owner input")
	}
	input.ID = id

	owner, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, owner, "Owner updated successfully")
}

// Delete removes an owner and returns the removed profile.
func (h *OwnerHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner id")
	}

	owner, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, owner, "Owner deleted successfully")
}
