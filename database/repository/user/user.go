package userRepo

import (
	"trimly/models"
)

// UserRepository exposes the contact lookups the booking and notification
// paths need. Account management itself lives with the identity provider.
type UserRepository interface {
	GetByID(userID string) (*models.User, error)
}
