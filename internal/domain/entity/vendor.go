// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor represents a food vendor listed in the catalog. Vendors have no
// credentials; they are plain CRUD records managed through the API.
type Vendor struct {
	ID        uuid.UUID      // The unique identifier for the vendor.
	Name      string         // The vendor's trading name.
	Email     string         // Contact email, unique across vendors.
	Phone     string         // Contact phone number.
	Address   string         // Physical address of the vendor.
	Cuisine   string         // The kind of food the vendor serves.
	Rating    float64        // Aggregate rating, 0 when unrated.
	Metadata  map[string]any // Free-form vendor metadata.
	CreatedAt time.Time      // Timestamp of when this vendor was created.
	UpdatedAt time.Time      // Timestamp of the last modification.
}
