package models

import "time"

// Comment - комментарий к записи ленты
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	AuthorID  string    `json:"author_id" gorm:"type:varchar(255);not null;index"`
	CreatedAt time.Time `json:"created_at"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
}
