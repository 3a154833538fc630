package models

import "time"

// Role values carried in the JWT
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID           string    `json:"id" example:"5f3c8a52-0d7e-4d53-9a55-4ab1b1f7a001"` // User ID
	Name         string    `json:"name" example:"Asha Rao"`                           // Display name
	Email        string    `json:"email" example:"asha@example.com"`                  // Login email
	Phone        string    `json:"phone" example:"+919800000000"`                     // Contact phone
	Role         string    `json:"role" example:"customer"`                           // customer or admin
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
