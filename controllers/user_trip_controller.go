package controllers

import (
	"net/http"
	"strconv"

	"tripmate/models"
	"tripmate/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserTripController struct {
	db *gorm.DB
}

func NewUserTripController() *UserTripController {
	return &UserTripController{db: utils.GetDB()}
}

// GET /api/user/trips
func (uc *UserTripController) List(c *gin.Context) {
	userID := c.GetString("user_id")

	var userTrips []models.UserTrip
	if err := uc.db.Preload("Trip").
		Where("user_id = ?", userID).
		Order("saved_at desc").
		Find(&userTrips).Error; err != nil {
		utils.LogError(err, "list user trips")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch user trips"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": userTrips})
}

// DELETE /api/user/trips/:tripId
// Удаляет только свои сохранённые строки: чужие этим запросом не задеть
func (uc *UserTripController) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID, err := strconv.Atoi(c.Param("tripId"))
	if err != nil || tripID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid trip id"})
		return
	}

	res := uc.db.Where("user_id = ? AND trip_id = ?", userID, tripID).Delete(&models.UserTrip{})
	if res.Error != nil {
		utils.LogError(res.Error, "delete user trip")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to remove trip"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"trip_id": tripID, "deleted": res.RowsAffected}})
}
