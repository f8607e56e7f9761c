package controllers

import (
	"encoding/json"
	"net/http"

	"tripmate/models"
	"tripmate/services"
	"tripmate/utils"

	"github.com/gin-gonic/gin"
)

type DestinationController struct{}

func NewDestinationController() *DestinationController {
	return &DestinationController{}
}

// GET /api/destinations/popular
// Топ-10 направлений по числу постов. Сначала смотрим прогретый кэш в
// Redis, на промахе - пересчёт из БД (он же обновит кэш).
func (dc *DestinationController) Popular(c *gin.Context) {
	if rdb := utils.GetRedis(); rdb != nil {
		if raw, err := rdb.Get(utils.RedisCtx(), services.PopularDestinationsCacheKey).Result(); err == nil {
			var rows []models.PopularDestination
			if json.Unmarshal([]byte(raw), &rows) == nil {
				c.JSON(http.StatusOK, gin.H{"success": true, "result": rows})
				return
			}
		}
	}

	rows, err := services.RefreshPopularDestinations(utils.GetDB())
	if err != nil {
		utils.LogError(err, "popular destinations")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch popular destinations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": rows})
}
