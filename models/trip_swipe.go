package models

import "time"

// TripSwipe - одно решение пользователя по карточке (лайк/пропуск).
// Уникальный индекс (user_id, trip_id) не даёт свайпнуть карточку дважды.
type TripSwipe struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:varchar(255);not null;uniqueIndex:idx_trip_swipes_user_trip"`
	TripID    uint      `json:"trip_id" gorm:"not null;uniqueIndex:idx_trip_swipes_user_trip"`
	Liked     bool      `json:"liked" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Trip *Trip `json:"-" gorm:"foreignKey:TripID;references:ID"`
}
