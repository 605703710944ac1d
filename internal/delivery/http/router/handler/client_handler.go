package handler

import (
	"log/slog"
	"net/http"

	"padifood/internal/delivery/http/response"
	"padifood/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateClientRequest mirrors the registration payload accepted from clients.
type CreateClientRequest struct {
	FirstName     string         `json:"firstName" validate:"required"`
	LastName      string         `json:"lastName" validate:"required"`
	Email         string         `json:"email" validate:"required,email"`
	Password      string         `json:"password" validate:"required,min=6"`
	Role          string         `json:"role" validate:"omitempty,oneof=user admin"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	Birthday      string         `json:"birthday"`
	FavoriteColor string         `json:"favoriteColor"`
	Metadata      map[string]any `json:"metadata"`
}

// UpdateClientRequest mirrors the partial update payload. Nil fields are
// left unchanged. Password changes are not accepted here; password keys in
// the payload are dropped before the update is applied.
type UpdateClientRequest struct {
	FirstName     *string        `json:"firstName"`
	LastName      *string        `json:"lastName"`
	Email         *string        `json:"email" validate:"omitempty,email"`
	Role          *string        `json:"role" validate:"omitempty,oneof=user admin"`
	Phone         *string        `json:"phone"`
	Address       *string        `json:"address"`
	Birthday      *string        `json:"birthday"`
	FavoriteColor *string        `json:"favoriteColor"`
	Metadata      map[string]any `json:"metadata"`
}

// hasUpdates reports whether at least one updatable field was provided.
func (r *UpdateClientRequest) hasUpdates() bool {
	return r.FirstName != nil || r.LastName != nil || r.Email != nil ||
		r.Role != nil || r.Phone != nil || r.Address != nil ||
		r.Birthday != nil || r.FavoriteColor != nil || r.Metadata != nil
}

// ClientHandler holds dependencies for client CRUD handlers.
type ClientHandler struct {
	uc     usecase.ClientUsecase
	logger *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler, injected by Fx.
func NewClientHandler(uc usecase.ClientUsecase, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles client registration.
func (h *ClientHandler) Create(c echo.Context) error {
	var req CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.Create(c.Request().Context(), usecase.CreateClientInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Password:      req.Password,
		Role:          req.Role,
		Phone:         req.Phone,
		Address:       req.Address,
		Birthday:      req.Birthday,
		FavoriteColor: req.FavoriteColor,
		Metadata:      req.Metadata,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, NewUserResponse(user), "Client created successfully")
}

// List returns every client account.
func (h *ClientHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewUserResponses(users), "Clients retrieved successfully")
}

// Get returns one client account by path ID.
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid client ID")
	}

	user, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewUserResponse(user), "Client retrieved successfully")
}

// Update applies a partial update to a client account.
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid client ID")
	}

	var req UpdateClientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !req.hasUpdates() {
		return response.BadRequest(c, "EMPTY_UPDATE", "At least one field is required to update")
	}

	user, err := h.uc.Update(c.Request().Context(), usecase.UpdateClientInput{
		ID:            id,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Role:          req.Role,
		Phone:         req.Phone,
		Address:       req.Address,
		Birthday:      req.Birthday,
		FavoriteColor: req.FavoriteColor,
		Metadata:      req.Metadata,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewUserResponse(user), "Client updated successfully")
}

// Delete removes a client account.
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid client ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Client deleted"}, "Client deleted successfully")
}
