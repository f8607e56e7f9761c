package models

import "time"

// Статусы сохранённого путешествия. Канонический набор - серверный,
// он же default в схеме.
const (
	UserTripStatusSaved     = "saved"
	UserTripStatusPlanned   = "planned"
	UserTripStatusCompleted = "completed"
)

// UserTrip - сохранённое путешествие пользователя. Без soft delete:
// удаление из сохранённых должно убирать строку насовсем.
type UserTrip struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	UserID  string    `json:"user_id" gorm:"type:varchar(255);not null;index"`
	TripID  uint      `json:"trip_id" gorm:"not null;index"`
	Status  string    `json:"status" gorm:"type:varchar(20);not null;default:saved"` // строго: saved | planned | completed
	SavedAt time.Time `json:"saved_at" gorm:"autoCreateTime"`

	User *User `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Trip *Trip `json:"trip,omitempty" gorm:"foreignKey:TripID;references:ID"`
}
