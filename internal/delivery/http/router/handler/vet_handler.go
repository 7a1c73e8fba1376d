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

// VetHandler holds dependencies for vet-related handlers.
type VetHandler struct {
	uc     usecase.VetUsecase
	logger *slog.Logger
}

// NewVetHandler is the constructor for VetHandler, injected by Fx.
func NewVetHandler(uc usecase.VetUsecase, logger *slog.Logger) *VetHandler {
	return &VetHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAll returns every registered vet.
func (h *VetHandler) GetAll(c echo.Context) error {
	vets, err := h.uc.GetAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vets, "")
}

// GetOne returns a single vet by id.
func (h *VetHandler) GetOne(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vet id")
	}

	vet, err := h.uc.GetOneByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vet, "")
}

// Create handles vet registration.
func (h *VetHandler) Create(c echo.Context) error {
	var input *usecase.VetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vet input")
	}

	vet, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, vet, "Vet created successfully")
}

// Update modifies an existing vet.
func (h *VetHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vet id")
	}

	var input *usecase.VetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vet input")
	}
	input.ID = id

	vet, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vet, "Vet updated successfully")
}

// Delete removes a vet and returns the removed profile.
func (h *VetHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vet id")
	}

	vet, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vet, "Vet deleted successfully")
}
