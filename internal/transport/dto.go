package transport

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyEmailRequest struct {
	Token string `json:"token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type CreateRoleRequest struct {
	Name    string   `json:"name"`
	Actions []string `json:"actions"`
}

type UpdateRoleRequest struct {
	Name    *string   `json:"name"`
	Actions *[]string `json:"actions"`
}

type CreateUserRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	RoleID   *uuid.UUID `json:"role_id"`
}

type UpdateUserRequest struct {
	Name     *string    `json:"name"`
	Email    *string    `json:"email"`
	Password *string    `json:"password"`
	Picture  *string    `json:"picture"`
	RoleID   *uuid.UUID `json:"role_id"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

type CreateProductRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Picture     string     `json:"picture"`
	HPP         float64    `json:"hpp"`
	Stock       int        `json:"stock"`
	SKU         *string    `json:"sku"`
	CategoryID  *uuid.UUID `json:"category_id"`
}

type PatchProductRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Price       *float64   `json:"price"`
	Picture     *string    `json:"picture"`
	HPP         *float64   `json:"hpp"`
	Stock       *int       `json:"stock"`
	SKU         *string    `json:"sku"`
	IsActive    *bool      `json:"is_active"`
	CategoryID  *uuid.UUID `json:"category_id"`
}

type CreateEventRequest struct {
	Name            string `json:"name"`
	Date            string `json:"date"`
	Address         string `json:"address"`
	AddressURL      string `json:"address_url"`
	ImageBackground string `json:"image_background"`
	Description     string `json:"description"`
	Brochure        string `json:"brochure"`
}

type UpdateEventRequest struct {
	Name            *string `json:"name"`
	Date            *string `json:"date"`
	Address         *string `json:"address"`
	AddressURL      *string `json:"address_url"`
	ImageBackground *string `json:"image_background"`
	Description     *string `json:"description"`
	Brochure        *string `json:"brochure"`
}

type CreateEventCategoryRequest struct {
	EventID        uint    `json:"event_id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	MaxParticipant *int    `json:"max_participant"`
	Description    string  `json:"description"`
}

type UpdateEventCategoryRequest struct {
	EventID        *uint    `json:"event_id"`
	Name           *string  `json:"name"`
	Price          *float64 `json:"price"`
	MaxParticipant *int     `json:"max_participant"`
	Description    *string  `json:"description"`
}

type CreateRegistrationRequest struct {
	EventCategoryID    uint    `json:"event_category_id"`
	Name               string  `json:"name"`
	Phone              string  `json:"phone"`
	ExpiredAt          *string `json:"expired_at"`
	TimeReregistration *string `json:"time_reregistration"`
	Status             *string `json:"status"`
}

type UpdateRegistrationRequest struct {
	EventCategoryID    *uint   `json:"event_category_id"`
	Name               *string `json:"name"`
	Phone              *string `json:"phone"`
	ExpiredAt          *string `json:"expired_at"`
	TimeReregistration *string `json:"time_reregistration"`
	Status             *string `json:"status"`
}

// ParseDate accepts a plain date or a full RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
