package models

import "time"

// PostLike - лайк записи. Наличие строки и есть состояние "нравится",
// уникальный индекс (post_id, user_id) исключает дубли.
type PostLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"not null;uniqueIndex:idx_post_likes_post_user"`
	UserID    string    `json:"user_id" gorm:"type:varchar(255);not null;uniqueIndex:idx_post_likes_post_user"`
	CreatedAt time.Time `json:"created_at"`
}
