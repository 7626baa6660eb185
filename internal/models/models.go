package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActionList is persisted as a JSON document so the same column works on
// postgres (jsonb) and the sqlite test database.
type ActionList []string

func (a ActionList) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (a *ActionList) Scan(src any) error {
	if src == nil {
		*a = ActionList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("cannot scan %T into ActionList", src)
	}
}

func (a ActionList) Contains(action string) bool {
	for _, granted := range a {
		if granted == action {
			return true
		}
	}
	return false
}

type Role struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"          json:"id"`
	Name      string     `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Actions   ActionList `gorm:"type:jsonb;not null"           json:"actions"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (r *Role) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"  json:"id"`
	Name         string     `gorm:"size:255"              json:"name"`
	Email        string     `gorm:"uniqueIndex;not null"  json:"email"`
	PasswordHash string     `gorm:"not null"              json:"-"`
	IsConfirmed  bool       `gorm:"default:false"         json:"is_confirmed"`
	Picture      string     `gorm:"size:500"              json:"picture,omitempty"`
	RoleID       *uuid.UUID `gorm:"type:uuid;index"       json:"role_id"`
	Role         *Role      `gorm:"foreignKey:RoleID"     json:"role,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"          json:"id"`
	Name      string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"  json:"id"`
	Name        string     `gorm:"size:500;not null"     json:"name"`
	Description string     `gorm:"type:text"             json:"description"`
	Price       float64    `gorm:"not null"              json:"price"`
	Picture     string     `gorm:"type:text"             json:"picture,omitempty"`
	HPP         float64    `json:"hpp"`
	Stock       int        `gorm:"not null"              json:"stock"`
	SKU         *string    `gorm:"size:100;uniqueIndex"  json:"sku"`
	IsActive    bool       `gorm:"default:true"          json:"is_active"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"       json:"category_id"`
	Category    *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Event struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"size:255;not null"        json:"name"`
	Date            time.Time `gorm:"not null"                 json:"date"`
	Address         string    `gorm:"size:500;not null"        json:"address"`
	AddressURL      string    `gorm:"size:500"                 json:"address_url,omitempty"`
	ImageBackground string    `gorm:"size:500"                 json:"image_background,omitempty"`
	Description     string    `gorm:"type:text"                json:"description,omitempty"`
	Brochure        string    `gorm:"size:500"                 json:"brochure,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type EventCategory struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID        uint      `gorm:"index;not null"           json:"event_id"`
	Event          *Event    `gorm:"foreignKey:EventID"       json:"event,omitempty"`
	Name           string    `gorm:"size:255;not null"        json:"name"`
	Price          float64   `json:"price"`
	MaxParticipant *int      `json:"max_participant"`
	Description    string    `gorm:"type:text"                json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RegistrationEvent struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement"   json:"id"`
	EventCategoryID    uint           `gorm:"index;not null"             json:"event_category_id"`
	EventCategory      *EventCategory `gorm:"foreignKey:EventCategoryID" json:"event_category,omitempty"`
	Name               string         `gorm:"size:255;not null"          json:"name"`
	Phone              string         `gorm:"size:50;not null"           json:"phone"`
	ExpiredAt          *time.Time     `json:"expired_at"`
	TimeReregistration *string        `gorm:"size:50"                    json:"time_reregistration"`
	Status             *string        `gorm:"size:50"                    json:"status"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// AuditLog rows are append-only. ActorID is a weak reference: deleting a user
// nulls it instead of removing the entry.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Action     string     `gorm:"size:255;not null"    json:"action"`
	ActorID    *uuid.UUID `gorm:"type:uuid;index"      json:"user_id"`
	Timestamp  time.Time  `gorm:"not null"             json:"timestamp"`
	Status     string     `gorm:"size:50;not null"     json:"status"`
	StatusCode string     `gorm:"size:50"              json:"status_code"`
}

func (l *AuditLog) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
