// README: Administrator accounts and credential checks.
package admin

import (
	"errors"
	"time"

	"voyage/internal/types"
)

var (
	ErrNotFound           = errors.New("admin not found")
	ErrEmailTaken         = errors.New("admin email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("admin authentication required")
	ErrInvalid            = errors.New("invalid admin")
)

const MinPasswordLength = 8

type Admin struct {
	ID           types.ID  `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// LoginResult is returned to a successfully authenticated admin.
type LoginResult struct {
	Token string `json:"token"`
	Admin *Admin `json:"admin"`
}
