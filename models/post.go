package models

import "time"

// Post - запись в ленте сообщества. Likes и CommentsCount -
// денормализованные счётчики, меняются только вместе со строками
// post_likes / comments внутри одной транзакции.
type Post struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"type:varchar(255);not null"`
	Content       string    `json:"content" gorm:"type:text;not null"`
	ImageURL      string    `json:"image_url" gorm:"type:text"`
	Destination   string    `json:"destination" gorm:"type:varchar(255);not null;index"`
	AuthorID      string    `json:"author_id" gorm:"type:varchar(255);not null;index"`
	Likes         int64     `json:"likes" gorm:"default:0"`
	CommentsCount int64     `json:"comments_count" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Author   *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}

// PopularDestination - строка агрегации "популярные направления"
type PopularDestination struct {
	Destination string `json:"destination"`
	PostCount   int64  `json:"post_count"`
}
