package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"tripmate/models"
	"tripmate/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type postPayload struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	ImageURL    string `json:"image_url"`
	Destination string `json:"destination" binding:"required"`
}

type PostController struct{}

func NewPostController() *PostController {
	return &PostController{}
}

// GET /api/posts
// Query: ?destination=Bali, Indonesia
func (pc *PostController) List(c *gin.Context) {
	db := utils.GetDB()
	destination := strings.TrimSpace(c.Query("destination"))

	q := db.Preload("Author").Order("created_at desc")
	if destination != "" {
		q = q.Where("destination = ?", destination)
	}
	var posts []models.Post
	if err := q.Find(&posts).Error; err != nil {
		utils.LogError(err, "list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": posts})
}

// GET /api/posts/:id
// Запись вместе с автором и комментариями (новые сверху)
func (pc *PostController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}
	db := utils.GetDB()

	var post models.Post
	if err := db.Preload("Author").First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "post not found"})
		return
	}
	if err := db.Preload("Author").
		Where("post_id = ?", id).
		Order("created_at desc").
		Find(&post.Comments).Error; err != nil {
		utils.LogError(err, "fetch post comments")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": post})
}

// POST /api/posts
func (pc *PostController) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req postPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid post data", "errors": bindingErrors(err)})
		return
	}

	post := models.Post{
		Title:       req.Title,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Destination: req.Destination,
		AuthorID:    userID,
	}
	db := utils.GetDB()
	if err := db.Create(&post).Error; err != nil {
		utils.LogError(err, "create post")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "result": post})
}

// POST /api/posts/:id/comments
// Комментарий и инкремент comments_count пишутся одной транзакцией
func (pc *PostController) CreateComment(c *gin.Context) {
	userID := c.GetString("user_id")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "comment content is required"})
		return
	}

	db := utils.GetDB()
	var post models.Post
	if err := db.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "post not found"})
		return
	}

	comment := models.Comment{
		Content:  content,
		PostID:   uint(id),
		AuthorID: userID,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", id).
			UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error
	})
	if err != nil {
		utils.LogError(err, "create comment")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to create comment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "result": comment})
}

// POST /api/posts/:id/like
// Переключатель: удаление по условию с проверкой RowsAffected вместо
// read-then-write, счётчик меняется в той же транзакции
func (pc *PostController) ToggleLike(c *gin.Context) {
	userID := c.GetString("user_id")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}

	db := utils.GetDB()
	var post models.Post
	if err := db.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "post not found"})
		return
	}

	liked := false
	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", id, userID).Delete(&models.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Model(&models.Post{}).Where("id = ?", id).
				UpdateColumn("likes", gorm.Expr("likes - 1")).Error
		}
		if err := tx.Create(&models.PostLike{PostID: uint(id), UserID: userID}).Error; err != nil {
			return err
		}
		liked = true
		return tx.Model(&models.Post{}).Where("id = ?", id).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error
	})
	if err != nil {
		utils.LogError(err, "toggle post like")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to toggle like"})
		return
	}

	var likes int64
	if err := db.Model(&models.Post{}).Where("id = ?", id).Select("likes").Scan(&likes).Error; err != nil {
		likes = post.Likes
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"post_id": id, "liked": liked, "likes": likes}})
}
