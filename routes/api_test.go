package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"tripmate/database"
	"tripmate/models"
	"tripmate/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

type apiResponse struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Error   string          `json:"error"`
	Errors  []gin.H         `json:"errors"`
}

// setupTestAPI поднимает чистую in-memory SQLite и роутер поверх неё
func setupTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	utils.SetDB(db)
	return SetupRouter()
}

func authToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := utils.GenerateJWT(userID, os.Getenv("JWT_SECRET"))
	require.NoError(t, err)
	return token
}

func createTestUser(t *testing.T, id string) models.User {
	t.Helper()
	email := id + "@example.com"
	user := models.User{ID: id, Email: &email}
	require.NoError(t, utils.GetDB().Create(&user).Error)
	return user
}

func createTestTrip(t *testing.T, title string, isPublic bool) models.Trip {
	t.Helper()
	trip := models.Trip{
		Title:       title,
		Destination: "Bali, Indonesia",
		Country:     "Indonesia",
		Duration:    7,
		Price:       "1250.00",
		IsPublic:    isPublic,
	}
	require.NoError(t, utils.GetDB().Create(&trip).Error)
	return trip
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp apiResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestGetTripsPublicOnly(t *testing.T) {
	r := setupTestAPI(t)
	createTestTrip(t, "Public trip", true)
	createTestTrip(t, "Private trip", false)

	w, resp := doJSON(t, r, "GET", "/api/trips", "", nil)
	assert.Equal(t, 200, w.Code)
	assert.True(t, resp.Success)

	var trips []models.Trip
	require.NoError(t, json.Unmarshal(resp.Result, &trips))
	require.Len(t, trips, 1)
	assert.Equal(t, "Public trip", trips[0].Title)
}

func TestGetTripNotFound(t *testing.T) {
	r := setupTestAPI(t)
	w, resp := doJSON(t, r, "GET", "/api/trips/9999", "", nil)
	assert.Equal(t, 404, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "trip not found", resp.Error)
}

func TestCreateTripRequiresAuth(t *testing.T) {
	r := setupTestAPI(t)
	w, _ := doJSON(t, r, "POST", "/api/trips", "", gin.H{"title": "X"})
	assert.Equal(t, 401, w.Code)
}

func TestCreateTripValidation(t *testing.T) {
	r := setupTestAPI(t)
	createTestUser(t, "u1")
	token := authToken(t, "u1")

	w, resp := doJSON(t, r, "POST", "/api/trips", token, gin.H{
		"title": "", "destination": "Bali", "country": "Indonesia",
	})
	assert.Equal(t, 400, w.Code)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Errors)
}

func TestCreateTrip(t *testing.T) {
	r := setupTestAPI(t)
	createTestUser(t, "u1")
	token := authToken(t, "u1")

	w, resp := doJSON(t, r, "POST", "/api/trips", token, gin.H{
		"title":       "Kyoto Temples",
		"description": "Old capital walk",
		"destination": "Kyoto, Japan",
		"country":     "Japan",
		"duration":    4,
		"price":       "900.00",
		"tags":        []string{"Culture", "Food"},
		"coordinates": gin.H{"lat": 35.0116, "lng": 135.7681},
	})
	require.Equal(t, 201, w.Code)

	var trip models.Trip
	require.NoError(t, json.Unmarshal(resp.Result, &trip))
	assert.Equal(t, "Kyoto Temples", trip.Title)
	require.NotNil(t, trip.CreatedBy)
	assert.Equal(t, "u1", *trip.CreatedBy)
	assert.True(t, trip.IsPublic)
}

func TestSwipeableExcludesSwiped(t *testing.T) {
	r := setupTestAPI(t)
	createTestUser(t, "u1")
	createTestUser(t, "u2")
	trip1 := createTestTrip(t, "Trip one", true)
	trip2 := createTestTrip(t, "Trip two", true)
	token := authToken(t, "u1")

	w, _ := doJSON(t, r, "POST", fmt.Sprintf("/api/trips/%d/swipe", trip1.ID), token, gin.H{"liked": false})
	require.Equal(t, 200, w.Code)

	// чужой свайп не должен влиять на ленту u1
	w, _ = doJSON(t, r, "POST", fmt.Sprintf("/api/trips/%d/swipe", trip2.ID), authToken(t, "u2"), gin.H{"liked": true})
	require.Equal(t, 200, w.Code)

	w, resp := doJSON(t, r, "GET", "/api/trips/swipeable", token, nil)
	require.Equal(t, 200, w.Code)
	var trips []models.Trip
	require.NoError(t, json.Unmarshal(resp.Result, &trips))
	require.Len(t, trips, 1)
	assert.Equal(t, trip2.ID, trips[0].ID)
}

func TestSwipeableFullCatalogWithoutHistory(t *testing.T) {
	r := setupTestAPI(t)
	createTestUser(t, "u1")
	createTestTrip(t, "Trip one", true)
	createTestTrip(t, "Trip two", true)
	createTestTrip(t, "Hidden", false)

	w, resp := doJSON(t, r, "GET", "/api/trips/swipeable", authToken(t, "u1"), nil)
	require.Equal(t, 200, w.Code)
	var trips []models.Trip
	require.NoError(t, json.Unmarshal(resp.Result, &trips))
	assert.Len(t, trips, 2)
}

func TestSwipeLikeSavesTrip(t *testing.T) {
	r := setupTestAPI(t)
	createTestUser(t, "u1")
	trip := createTestTrip(t, "Liked trip", true)
	token := authToken(t, "u1")

	w, _ := doJSON(t, r, "POST", fmt.Sprintf("/api/trips/%d/swipe", trip.ID), token, gin.H{"liked": true})
	require.Equal(t, 200, w.Code)

	var userTrip models.UserTrip
	require.NoError(t, utils.GetDB().Where("user_id = ? AND trip_id = ?", "u1", trip.ID).First(&userTrip).Error)
	assert.Equal(t, models.UserTripStatusSaved, userTrip.Status)

	w, resp := doJSON(t, r, "GET", "/api/user/trips", token, nil)
	require.Equal(t, 200, w.Code)
	var saved []models.UserTrip
	require.NoError(t, json.Unmarshal(resp.Result, &saved))
	require.Len(t, saved, 1)
	require.NotNil(t, saved[0].Trip)
	assert.Equal(t, "Liked trip", saved[0].Trip.Title)
}

func TestSwipePassDoesNotSave(t *testing.T) {
	r := setupTestAPI(t)
	createTestUser(t, "u1")
	trip := createTestTrip(t, "Passed trip", true)

	w, _ := doJSON(t, r, "POST", fmt.Sprintf("/api/trips/%d/swipe", trip.ID), authToken(t, "u1"), gin.H{"liked": false})
	require.Equal(t, 200, w.Code)

	var count int64
	require.NoError(t, utils.GetDB().Model(&models.UserTrip{}).Where("user_id = ?", "u1").Count(&count).Error)
	assert.Zero(t, count)
}

func TestDuplicateSwipeConflict(t *testing.T) {
	r := setupTestAPI(t)
	createTestUser(t, "u1")
	trip := createTestTrip(t, "Once only", true)
	token := authToken(t, "u1")

	w, _ := doJSON(t, r, "POST", fmt.Sprintf("/api/trips/%d/swipe", trip.ID), token, gin.H{"liked": false})
	require.Equal(t, 200, w.Code)

	w, resp := doJSON(t, r, "POST", fmt.Sprintf("/api/trips/%d/swipe", trip.ID), token, gin.H{"liked": true})
	assert.Equal(t, 409, w.Code)
	assert.Equal(t, "trip already swiped", resp.Error)

	// конфликтный лайк не должен ничего сохранить
	var count int64
	require.NoError(t, utils.GetDB().Model(&models.UserTrip{}).Where("user_id = ?", "u1").Count(&count).Error)
	assert.Zero(t, count)
}

func TestSwipeUnknownTrip(t *testing.T) {
	r := setupTestAPI(t)
	createTestUser(t, "u1")
	w, _ := doJSON(t, r, "POST", "/api/trips/9999/swipe", authToken(t, "u1"), gin.H{"liked": true})
	assert.Equal(t, 404, w.Code)
}

func TestDeleteUserTripOwnerScoped(t *testing.T) {
	r := setupTestAPI(t)
	createTestUser(t, "owner")
	createTestUser(t, "intruder")
	trip := createTestTrip(t, "Saved trip", true)

	w, _ := doJSON(t, r, "POST", fmt.Sprintf("/api/trips/%d/swipe", trip.ID), authToken(t, "owner"), gin.H{"liked": true})
	require.Equal(t, 200, w.Code)

	// чужое удаление - no-op
	w, _ = doJSON(t, r, "DELETE", fmt.Sprintf("/api/user/trips/%d", trip.ID), authToken(t, "intruder"), nil)
	require.Equal(t, 200, w.Code)
	var count int64
	require.NoError(t, utils.GetDB().Model(&models.UserTrip{}).Where("user_id = ?", "owner").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w, _ = doJSON(t, r, "DELETE", fmt.Sprintf("/api/user/trips/%d", trip.ID), authToken(t, "owner"), nil)
	require.Equal(t, 200, w.Code)
	require.NoError(t, utils.GetDB().Model(&models.UserTrip{}).Where("user_id = ?", "owner").Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreatePostValidation(t *testing.T) {
	r := setupTestAPI(t)
	createTestUser(t, "u1")

	w, resp := doJSON(t, r, "POST", "/api/posts", authToken(t, "u1"), gin.H{
		"title": "", "content": "some content", "destination": "Bali, Indonesia",
	})
	assert.Equal(t, 400, w.Code)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Errors)

	var count int64
	require.NoError(t, utils.GetDB().Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPostsDestinationFilter(t *testing.T) {
	r := setupTestAPI(t)
	author := createTestUser(t, "u1")
	token := authToken(t, "u1")

	w, _ := doJSON(t, r, "POST", "/api/posts", token, gin.H{
		"title": "Bali beaches", "content": "...", "destination": "Bali, Indonesia",
	})
	require.Equal(t, 201, w.Code)
	w, _ = doJSON(t, r, "POST", "/api/posts", token, gin.H{
		"title": "Tokyo nights", "content": "...", "destination": "Tokyo, Japan",
	})
	require.Equal(t, 201, w.Code)

	w, resp := doJSON(t, r, "GET", "/api/posts?destination=Tokyo,%20Japan", "", nil)
	require.Equal(t, 200, w.Code)
	var posts []models.Post
	require.NoError(t, json.Unmarshal(resp.Result, &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "Tokyo nights", posts[0].Title)
	require.NotNil(t, posts[0].Author)
	assert.Equal(t, author.ID, posts[0].Author.ID)
}

func TestGetPostWithComments(t *testing.T) {
	r := setupTestAPI(t)
	createTestUser(t, "u1")
	post := models.Post{Title: "Trip report", Content: "...", Destination: "Bali, Indonesia", AuthorID: "u1"}
	require.NoError(t, utils.GetDB().Create(&post).Error)

	base := time.Now().Add(-time.Hour)
	for i, text := range []string{"first", "second", "third"} {
		comment := models.Comment{Content: text, PostID: post.ID, AuthorID: "u1", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, utils.GetDB().Create(&comment).Error)
	}

	w, resp := doJSON(t, r, "GET", fmt.Sprintf("/api/posts/%d", post.ID), "", nil)
	require.Equal(t, 200, w.Code)
	var got models.Post
	require.NoError(t, json.Unmarshal(resp.Result, &got))
	require.NotNil(t, got.Author)
	require.Len(t, got.Comments, 3)
	// новые сверху
	assert.Equal(t, "third", got.Comments[0].Content)
	assert.Equal(t, "first", got.Comments[2].Content)
}

func TestGetPostNotFound(t *testing.T) {
	r := setupTestAPI(t)
	w, _ := doJSON(t, r, "GET", "/api/posts/555", "", nil)
	assert.Equal(t, 404, w.Code)
}

func TestCommentIncrementsCounter(t *testing.T) {
	r := setupTestAPI(t)
	createTestUser(t, "u1")
	post := models.Post{Title: "T", Content: "...", Destination: "Bali, Indonesia", AuthorID: "u1"}
	require.NoError(t, utils.GetDB().Create(&post).Error)

	w, resp := doJSON(t, r, "POST", fmt.Sprintf("/api/posts/%d/comments", post.ID), authToken(t, "u1"), gin.H{"content": "  great trip  "})
	require.Equal(t, 201, w.Code)
	var comment models.Comment
	require.NoError(t, json.Unmarshal(resp.Result, &comment))
	assert.Equal(t, "great trip", comment.Content)

	var updated models.Post
	require.NoError(t, utils.GetDB().First(&updated, post.ID).Error)
	assert.Equal(t, int64(1), updated.CommentsCount)
}

func TestBlankCommentRejected(t *testing.T) {
	r := setupTestAPI(t)
	createTestUser(t, "u1")
	post := models.Post{Title: "T", Content: "...", Destination: "Bali, Indonesia", AuthorID: "u1"}
	require.NoError(t, utils.GetDB().Create(&post).Error)

	w, resp := doJSON(t, r, "POST", fmt.Sprintf("/api/posts/%d/comments", post.ID), authToken(t, "u1"), gin.H{"content": "   "})
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "comment content is required", resp.Error)

	var count int64
	require.NoError(t, utils.GetDB().Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
	var updated models.Post
	require.NoError(t, utils.GetDB().First(&updated, post.ID).Error)
	assert.Zero(t, updated.CommentsCount)
}

func TestToggleLikeTwiceRestoresState(t *testing.T) {
	r := setupTestAPI(t)
	createTestUser(t, "u1")
	post := models.Post{Title: "T", Content: "...", Destination: "Bali, Indonesia", AuthorID: "u1"}
	require.NoError(t, utils.GetDB().Create(&post).Error)
	token := authToken(t, "u1")
	path := fmt.Sprintf("/api/posts/%d/like", post.ID)

	w, resp := doJSON(t, r, "POST", path, token, nil)
	require.Equal(t, 200, w.Code)
	var state struct {
		Liked bool  `json:"liked"`
		Likes int64 `json:"likes"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &state))
	assert.True(t, state.Liked)
	assert.Equal(t, int64(1), state.Likes)

	w, resp = doJSON(t, r, "POST", path, token, nil)
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(resp.Result, &state))
	assert.False(t, state.Liked)
	assert.Zero(t, state.Likes)

	var likeRows int64
	require.NoError(t, utils.GetDB().Model(&models.PostLike{}).Count(&likeRows).Error)
	assert.Zero(t, likeRows)
}

func TestPopularDestinationsEndpoint(t *testing.T) {
	r := setupTestAPI(t)
	createTestUser(t, "u1")
	// 12 направлений с разным числом постов: в топ должны попасть только 10
	for d := 1; d <= 12; d++ {
		for p := 0; p < d; p++ {
			post := models.Post{Title: "T", Content: "...", Destination: fmt.Sprintf("dest-%02d", d), AuthorID: "u1"}
			require.NoError(t, utils.GetDB().Create(&post).Error)
		}
	}

	w, resp := doJSON(t, r, "GET", "/api/destinations/popular", "", nil)
	require.Equal(t, 200, w.Code)
	var rows []models.PopularDestination
	require.NoError(t, json.Unmarshal(resp.Result, &rows))
	require.Len(t, rows, 10)
	assert.Equal(t, "dest-12", rows[0].Destination)
	assert.Equal(t, int64(12), rows[0].PostCount)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].PostCount, rows[i].PostCount)
	}
}

func TestAuthUserUpsertsFromClaims(t *testing.T) {
	r := setupTestAPI(t)

	claims := jwt.MapClaims{
		"sub":        "ext-user-1",
		"email":      "traveler@example.com",
		"first_name": "Nina",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(os.Getenv("JWT_SECRET")))
	require.NoError(t, err)

	w, resp := doJSON(t, r, "GET", "/api/auth/user", token, nil)
	require.Equal(t, 200, w.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(resp.Result, &user))
	assert.Equal(t, "ext-user-1", user.ID)
	require.NotNil(t, user.Email)
	assert.Equal(t, "traveler@example.com", *user.Email)
	require.NotNil(t, user.FirstName)
	assert.Equal(t, "Nina", *user.FirstName)

	// повторный вход с обновлённым именем должен обновить строку, не создавая новую
	claims["first_name"] = "Nina-Maria"
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(os.Getenv("JWT_SECRET")))
	require.NoError(t, err)
	w, resp = doJSON(t, r, "GET", "/api/auth/user", token, nil)
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(resp.Result, &user))
	require.NotNil(t, user.FirstName)
	assert.Equal(t, "Nina-Maria", *user.FirstName)

	var count int64
	require.NoError(t, utils.GetDB().Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthEndpointsRejectMissingToken(t *testing.T) {
	r := setupTestAPI(t)
	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/auth/user"},
		{"GET", "/api/trips/swipeable"},
		{"GET", "/api/user/trips"},
		{"POST", "/api/posts"},
	} {
		w, _ := doJSON(t, r, tc.method, tc.path, "", nil)
		assert.Equal(t, 401, w.Code, "%s %s", tc.method, tc.path)
	}
}
