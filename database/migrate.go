package database

import (
	"tripmate/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Trip{},
		&models.UserTrip{},
		&models.TripSwipe{},
		&models.Post{},
		&models.Comment{},
		&models.PostLike{},
	); err != nil {
		return err
	}

	// Индексы под сортировку лент (новое сверху)
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_trips_created_at ON trips(created_at)`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at)`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_comments_created_at ON comments(created_at)`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_user_trips_saved_at ON user_trips(saved_at)`).Error; err != nil {
		return err
	}

	return nil
}
