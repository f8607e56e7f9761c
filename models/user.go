package models

import "time"

// User - профиль путешественника. ID выдаётся внешним провайдером
// авторизации (subject токена), поэтому строка, а не serial.
type User struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(255)"`
	Email           *string   `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	FirstName       *string   `json:"first_name" gorm:"type:varchar(100)"`
	LastName        *string   `json:"last_name" gorm:"type:varchar(100)"`
	ProfileImageURL *string   `json:"profile_image_url" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
