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

// PetHandler holds dependencies for pet-related handlers.
type PetHandler struct {
	uc     usecase.PetUsecase
	logger *slog.Logger
}

// NewPetHandler is the constructor for PetHandler, injected by Fx.
func NewPetHandler(uc usecase.PetUsecase, logger *slog.Logger) *PetHandler {
	return &PetHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAll returns every registered pet.
func (h *PetHandler) GetAll(c echo.Context) error {
	pets, err := h.uc.GetAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pets, "")
}

// GetOne returns a single pet by id.
func (h *PetHandler) GetOne(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pet id")
	}

	pet, err := h.uc.GetOneByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pet, "")
}

// Create registers a new pet.
func (h *PetHandler) Create(c echo.Context) error {
	var input *usecase.PetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet input")
	}

	pet, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pet, "Pet created successfully")
}

// Update modifies an existing pet.
func (h *PetHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pet id")
	}

	var input *usecase.PetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet input")
	}
	input.ID = id

	pet, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pet, "Pet updated successfully")
}

// Delete removes a pet and returns the removed record.
func (h *PetHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pet id")
	}

	pet, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pet, "Pet deleted successfully")
}
