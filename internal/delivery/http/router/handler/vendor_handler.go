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

// VendorRequest mirrors the payload accepted when creating or updating a vendor.
type VendorRequest struct {
	Name     string         `json:"name" validate:"required"`
	Email    string         `json:"email" validate:"required,email"`
	Phone    string         `json:"phone"`
	Address  string         `json:"address"`
	Cuisine  string         `json:"cuisine"`
	Rating   float64        `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Metadata map[string]any `json:"metadata"`
}

// VendorHandler holds dependencies for vendor CRUD handlers.
type VendorHandler struct {
	uc     usecase.VendorUsecase
	logger *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(uc usecase.VendorUsecase, logger *slog.Logger) *VendorHandler {
	return &VendorHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create lists a new vendor.
func (h *VendorHandler) Create(c echo.Context) error {
	var req VendorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	vendor, err := h.uc.Create(c.Request().Context(), usecase.CreateVendorInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Cuisine:  req.Cuisine,
		Rating:   req.Rating,
		Metadata: req.Metadata,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, NewVendorResponse(vendor), "Vendor created successfully")
}

// List returns every vendor.
func (h *VendorHandler) List(c echo.Context) error {
	vendors, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewVendorResponses(vendors), "Vendors retrieved successfully")
}

// Get returns one vendor by path ID.
func (h *VendorHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	vendor, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewVendorResponse(vendor), "Vendor retrieved successfully")
}

// Update replaces a vendor's mutable fields.
func (h *VendorHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	var req VendorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	vendor, err := h.uc.Update(c.Request().Context(), usecase.UpdateVendorInput{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Cuisine:  req.Cuisine,
		Rating:   req.Rating,
		Metadata: req.Metadata,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewVendorResponse(vendor), "Vendor updated successfully")
}

// Delete removes a vendor.
func (h *VendorHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Vendor deleted"}, "Vendor deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
