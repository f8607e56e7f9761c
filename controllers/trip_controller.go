package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tripmate/models"
	"tripmate/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type tripPayload struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Destination string          `json:"destination" binding:"required"`
	Country     string          `json:"country" binding:"required"`
	Region      string          `json:"region"`
	City        string          `json:"city"`
	Duration    int             `json:"duration" binding:"required,gt=0"`
	Price       string          `json:"price" binding:"required"`
	ImageURL    string          `json:"image_url"`
	Tags        []string        `json:"tags"`
	Itinerary   json.RawMessage `json:"itinerary"`
	Coordinates json.RawMessage `json:"coordinates"`
	IsPublic    *bool           `json:"is_public"`
}

type TripController struct{}

func NewTripController() *TripController {
	return &TripController{}
}

func jsonFrom(v any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

// GET /api/trips
func (tc *TripController) List(c *gin.Context) {
	db := utils.GetDB()
	var trips []models.Trip
	if err := db.Where("is_public = ?", true).Order("created_at desc").Find(&trips).Error; err != nil {
		utils.LogError(err, "list trips")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch trips"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": trips})
}

// GET /api/trips/:id
func (tc *TripController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}
	db := utils.GetDB()
	var trip models.Trip
	if err := db.First(&trip, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "trip not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": trip})
}

// POST /api/trips
func (tc *TripController) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req tripPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid trip data", "errors": bindingErrors(err)})
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	trip := models.Trip{
		Title:       req.Title,
		Description: req.Description,
		Destination: req.Destination,
		Country:     req.Country,
		Region:      req.Region,
		City:        req.City,
		Duration:    req.Duration,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Tags:        jsonFrom(req.Tags),
		CreatedBy:   &userID,
		IsPublic:    isPublic,
	}
	if len(req.Itinerary) > 0 {
		trip.Itinerary = datatypes.JSON(req.Itinerary)
	}
	if len(req.Coordinates) > 0 {
		trip.Coordinates = datatypes.JSON(req.Coordinates)
	}

	db := utils.GetDB()
	if err := db.Create(&trip).Error; err != nil {
		utils.LogError(err, "create trip")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to create trip"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "result": trip})
}

// GET /api/trips/swipeable
// Публичные карточки, по которым у пользователя ещё нет свайпа.
// Без истории свайпов отдаёт весь публичный каталог.
func (tc *TripController) Swipeable(c *gin.Context) {
	userID := c.GetString("user_id")
	db := utils.GetDB()

	swiped := db.Model(&models.TripSwipe{}).Select("trip_id").Where("user_id = ?", userID)
	var trips []models.Trip
	if err := db.Where("is_public = ?", true).
		Where("id NOT IN (?)", swiped).
		Order("created_at desc").
		Find(&trips).Error; err != nil {
		utils.LogError(err, "swipeable trips")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch swipeable trips"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": trips})
}

// POST /api/trips/:id/swipe
// Записывает решение по карточке. Лайк дополнительно сохраняет путешествие
// в user_trips со статусом saved - обе записи в одной транзакции.
func (tc *TripController) Swipe(c *gin.Context) {
	userID := c.GetString("user_id")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}

	var req struct {
		Liked *bool `json:"liked" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid swipe data", "errors": bindingErrors(err)})
		return
	}

	db := utils.GetDB()
	var trip models.Trip
	if err := db.First(&trip, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "trip not found"})
		return
	}

	swipe := models.TripSwipe{
		UserID: userID,
		TripID: uint(id),
		Liked:  *req.Liked,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&swipe).Error; err != nil {
			return err
		}
		if swipe.Liked {
			return tx.Create(&models.UserTrip{
				UserID: userID,
				TripID: swipe.TripID,
				Status: models.UserTripStatusSaved,
			}).Error
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "result": nil, "error": "trip already swiped"})
			return
		}
		utils.LogError(err, "record trip swipe")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to record swipe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": swipe})
}
