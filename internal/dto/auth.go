package dto

import "github.com/golang-jwt/jwt/v5"

// Roles carried in access tokens.
const (
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
	RoleAdmin   = "ADMIN"
)

// AuthClaims is the identity resolved from a bearer token.
type AuthClaims struct {
	UserID           string `json:"user_id"`
	Role             string `json:"role"`
	SubscriptionPlan string `json:"subscription_plan,omitempty"`
	TokenType        string `json:"token_type"`
	jwt.RegisteredClaims
}
