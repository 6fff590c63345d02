package models

import "time"

// User is a platform account. Credential issuance and verification live in the
// identity provider; this record only carries the contact identity the
// notification dispatcher needs.
type User struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	PhoneNumber     string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Role            string    `bson:"role" json:"role"` // "customer", "shopOwner", "admin"
	ProfileImageURL string    `bson:"profileImageUrl,omitempty" json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
