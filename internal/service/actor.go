package service

import (
	"capstone-backend/internal/database/models"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of an operation
type Actor struct {
	ID   uuid.UUID       `json:"id"`
	Role models.UserRole `json:"role"`
}

// IsAdmin reports whether the actor is an administrator
func (a Actor) IsAdmin() bool {
	return a.Role == models.UserRoleAdmin
}

// IsAdvisor reports whether the actor is an advisor
func (a Actor) IsAdvisor() bool {
	return a.Role == models.UserRoleAdvisor
}

// IsStaff reports whether the actor is an advisor or an administrator
func (a Actor) IsStaff() bool {
	return a.IsAdmin() || a.IsAdvisor()
}
