package domain

import (
	"github.com/dgrijalva/jwt-go"
)

type Role string

const (
	RoleRequester Role = "requester"
	RoleOwner     Role = "owner"
	RoleAgent     Role = "agent"
	RoleAdmin     Role = "admin"
)

type Claim struct {
	UserID        string `json:"user_id"`
	Role          Role   `json:"role"`
	IsVerified    bool   `json:"is_verified"`
	EmailVerified bool   `json:"email_verified"`
	PhoneVerified bool   `json:"phone_verified"`
	jwt.StandardClaims
}
