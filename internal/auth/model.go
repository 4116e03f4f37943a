package auth

import "time"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest payload for account creation.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" example:"Asha"`
	Email    string `json:"email" example:"asha@example.com"`
	Password string `json:"password" example:"hunter2hunter2"`
}

// LoginRequest payload for credential login.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" example:"asha@example.com"`
	Password string `json:"password" example:"hunter2hunter2"`
}

// SessionResponse is returned by register and login.
// swagger:model SessionResponse
type SessionResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
