package handler

import (
	"time"

	"padifood/internal/domain/entity"
)

// UserResponse is the serialized shape of a client account. The password hash
// has no field here at all, so it cannot leak by accident.
type UserResponse struct {
	ID            string         `json:"id"`
	Email         string         `json:"email"`
	FirstName     string         `json:"firstName,omitempty"`
	LastName      string         `json:"lastName,omitempty"`
	Role          string         `json:"role"`
	Phone         string         `json:"phone,omitempty"`
	Address       string         `json:"address,omitempty"`
	Birthday      string         `json:"birthday,omitempty"`
	FavoriteColor string         `json:"favoriteColor,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// NewUserResponse maps a domain user to its response shape.
func NewUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Role:          user.Role.String(),
		Phone:         user.Phone,
		Address:       user.Address,
		Birthday:      user.Birthday,
		FavoriteColor: user.FavoriteColor,
		Metadata:      user.Metadata,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// NewUserResponses maps a slice of domain users.
func NewUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}

	return out
}

// VendorResponse is the serialized shape of a vendor.
type VendorResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone,omitempty"`
	Address   string         `json:"address,omitempty"`
	Cuisine   string         `json:"cuisine,omitempty"`
	Rating    float64        `json:"rating"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// NewVendorResponse maps a domain vendor to its response shape.
func NewVendorResponse(vendor *entity.Vendor) *VendorResponse {
	if vendor == nil {
		return nil
	}

	return &VendorResponse{
		ID:        vendor.ID.String(),
		Name:      vendor.Name,
		Email:     vendor.Email,
		Phone:     vendor.Phone,
		Address:   vendor.Address,
		Cuisine:   vendor.Cuisine,
		Rating:    vendor.Rating,
		Metadata:  vendor.Metadata,
		CreatedAt: vendor.CreatedAt,
		UpdatedAt: vendor.UpdatedAt,
	}
}

// NewVendorResponses maps a slice of domain vendors.
func NewVendorResponses(vendors []*entity.Vendor) []*VendorResponse {
	out := make([]*VendorResponse, 0, len(vendors))
	for _, vendor := range vendors {
		out = append(out, NewVendorResponse(vendor))
	}

	return out
}
