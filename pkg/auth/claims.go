// Package auth validates the JWTs issued by the external identity provider
// and exposes the acting user and clinic to request handlers. Token issuance
// and session management live outside this codebase.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the JWT claims for the clinic platform. ClinicID is the
// tenant boundary: it is the only source of the acting clinic, request
// payloads never carry one.
type Claims struct {
	jwt.RegisteredClaims
	UserID   uuid.UUID `json:"user_id"`
	ClinicID uuid.UUID `json:"clinic_id"`
	Roles    []string  `json:"roles"`
}

// HasRole checks if the claims include the specified role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role constants.
const (
	RoleOwner        = "OWNER"
	RoleAdmin        = "ADMIN"
	RoleManager      = "MANAGER"
	RoleReception    = "RECEPTION"
	RoleProfessional = "PROFESSIONAL"
)
