package controllers

import (
	"net/http"

	"tripmate/models"
	"tripmate/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

func claimStr(claims jwt.MapClaims, key string) *string {
	if v, ok := claims[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

// GET /api/auth/user
// Профиль текущего пользователя. При первом входе строка создаётся из
// claims токена, при повторных - данные профиля обновляются (upsert по id).
func (ac *AuthController) GetUser(c *gin.Context) {
	userID := c.GetString("user_id")

	claims := jwt.MapClaims{}
	if v, ok := c.Get("claims"); ok {
		if mc, ok := v.(jwt.MapClaims); ok {
			claims = mc
		}
	}

	user := models.User{
		ID:              userID,
		Email:           claimStr(claims, "email"),
		FirstName:       claimStr(claims, "first_name"),
		LastName:        claimStr(claims, "last_name"),
		ProfileImageURL: claimStr(claims, "profile_image_url"),
	}

	db := utils.GetDB()
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "last_name", "profile_image_url", "updated_at"}),
	}).Create(&user).Error; err != nil {
		utils.LogError(err, "upsert user")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch user"})
		return
	}

	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		utils.LogError(err, "fetch user")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": user})
}
