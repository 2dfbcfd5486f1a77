package auth

import (
	"time"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// AuthResult is returned by Login and Register.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
	Role        domain.UserRole
}
