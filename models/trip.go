package models

import (
	"time"

	"gorm.io/datatypes"
)

// Trip - карточка путешествия (каталог + свайп-лента)
type Trip struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"type:varchar(255);not null"`
	Description string         `json:"description" gorm:"type:text"`
	Destination string         `json:"destination" gorm:"type:varchar(255);not null;index"`
	Country     string         `json:"country" gorm:"type:varchar(100);not null"`
	Region      string         `json:"region" gorm:"type:varchar(100)"`
	City        string         `json:"city" gorm:"type:varchar(100)"`
	Duration    int            `json:"duration" gorm:"not null"` // дней
	Price       string         `json:"price" gorm:"type:decimal(10,2);not null"`
	ImageURL    string         `json:"image_url" gorm:"type:text"`
	Tags        datatypes.JSON `json:"tags" gorm:"type:jsonb"`
	Itinerary   datatypes.JSON `json:"itinerary,omitempty" gorm:"type:jsonb"` // план по дням
	Coordinates datatypes.JSON `json:"coordinates,omitempty" gorm:"type:jsonb"` // {lat, lng}
	CreatedBy   *string        `json:"created_by" gorm:"type:varchar(255);index"`
	IsPublic    bool           `json:"is_public" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	// Связь с автором (не обязательно подгружать)
	Creator *User `json:"-" gorm:"foreignKey:CreatedBy;references:ID"`
}
