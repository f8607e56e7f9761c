package services

import (
	"encoding/json"
	"time"

	"tripmate/models"
	"tripmate/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const PopularDestinationsCacheKey = "popular_destinations"

const popularDestinationsTTL = 10 * time.Minute

// QueryPopularDestinations - агрегация по ленте: направления по убыванию
// числа постов, максимум 10 строк
func QueryPopularDestinations(db *gorm.DB) ([]models.PopularDestination, error) {
	rows := []models.PopularDestination{}
	err := db.Model(&models.Post{}).
		Select("destination, COUNT(*) AS post_count").
		Group("destination").
		Order("post_count DESC").
		Limit(10).
		Scan(&rows).Error
	return rows, err
}

// RefreshPopularDestinations пересчитывает агрегацию и кладёт результат в Redis
func RefreshPopularDestinations(db *gorm.DB) ([]models.PopularDestination, error) {
	rows, err := QueryPopularDestinations(db)
	if err != nil {
		return nil, err
	}
	if rdb := utils.GetRedis(); rdb != nil {
		if b, err := json.Marshal(rows); err == nil {
			rdb.Set(utils.RedisCtx(), PopularDestinationsCacheKey, b, popularDestinationsTTL)
		}
	}
	return rows, nil
}

// StartDestinationCron греет кэш популярных направлений при старте и
// дальше каждые 5 минут
func StartDestinationCron(db *gorm.DB) {
	if _, err := RefreshPopularDestinations(db); err != nil {
		utils.LogError(err, "destination cron initial refresh")
	}

	c := cron.New()
	if _, err := c.AddFunc("@every 5m", func() {
		if _, err := RefreshPopularDestinations(db); err != nil {
			utils.LogError(err, "destination cron refresh")
		}
	}); err != nil {
		utils.LogError(err, "destination cron schedule")
		return
	}
	c.Start()
}
