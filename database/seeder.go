package database

import (
	"encoding/json"

	"tripmate/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func strPtr(s string) *string {
	return &s
}

func jsonFrom(v any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

// SeedUsers проверяет таблицу users и, если она пуста, создаёт демо-аккаунты
// авторов стартового каталога
func SeedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Пользователи уже есть, ничего не делаем
	}
	users := []models.User{
		{
			ID:              "seed_user_1",
			Email:           strPtr("emma.wilson@example.com"),
			FirstName:       strPtr("Emma"),
			LastName:        strPtr("Wilson"),
			ProfileImageURL: strPtr("https://images.unsplash.com/photo-1494790108755-2616b612b5bc?w=256&h=256"),
		},
		{
			ID:              "seed_user_2",
			Email:           strPtr("alex.chen@example.com"),
			FirstName:       strPtr("Alex"),
			LastName:        strPtr("Chen"),
			ProfileImageURL: strPtr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=256&h=256"),
		},
		{
			ID:              "seed_user_3",
			Email:           strPtr("sarah.kim@example.com"),
			FirstName:       strPtr("Sarah"),
			LastName:        strPtr("Kim"),
			ProfileImageURL: strPtr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=256&h=256"),
		},
	}
	return db.Create(&users).Error
}

// SeedTrips заполняет стартовый каталог публичных путешествий, если таблица пуста
func SeedTrips(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Trip{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	trips := []models.Trip{
		{
			Title:       "Bali Cultural Discovery",
			Description: "Immerse yourself in Balinese culture with temple visits, traditional cooking classes, and local artisan workshops.",
			Destination: "Bali, Indonesia",
			Country:     "Indonesia",
			Region:      "Bali",
			City:        "Ubud",
			Duration:    7,
			Price:       "1250.00",
			ImageURL:    "https://images.unsplash.com/photo-1537953773345-d172ccf13cf1?w=800&h=600",
			Tags:        jsonFrom([]string{"Culture", "Food", "Relaxation", "Photography"}),
			Coordinates: jsonFrom(map[string]float64{"lat": -8.5069, "lng": 115.2625}),
			CreatedBy:   strPtr("seed_user_1"),
			IsPublic:    true,
		},
		{
			Title:       "Tokyo Urban Adventure",
			Description: "Navigate the electric energy of Tokyo with a perfect blend of modern attractions and traditional experiences.",
			Destination: "Tokyo, Japan",
			Country:     "Japan",
			Region:      "Kanto",
			City:        "Tokyo",
			Duration:    5,
			Price:       "1850.00",
			ImageURL:    "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800&h=600",
			Tags:        jsonFrom([]string{"Culture", "Food", "Nightlife", "Photography"}),
			Coordinates: jsonFrom(map[string]float64{"lat": 35.6762, "lng": 139.6503}),
			CreatedBy:   strPtr("seed_user_2"),
			IsPublic:    true,
		},
		{
			Title:       "Thailand Island Paradise",
			Description: "Discover pristine beaches, crystal-clear waters, and vibrant marine life. Perfect for relaxation and water sports.",
			Destination: "Phuket, Thailand",
			Country:     "Thailand",
			Region:      "Southern Thailand",
			City:        "Phuket",
			Duration:    6,
			Price:       "950.00",
			ImageURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600",
			Tags:        jsonFrom([]string{"Relaxation", "Adventure", "Party", "Budget"}),
			Coordinates: jsonFrom(map[string]float64{"lat": 7.8804, "lng": 98.3923}),
			CreatedBy:   strPtr("seed_user_1"),
			IsPublic:    true,
		},
		{
			Title:       "Tuscany Wine & Culture",
			Description: "Experience the rolling hills of Tuscany with world-class wine tastings, Renaissance art, and authentic Italian cuisine.",
			Destination: "Florence, Italy",
			Country:     "Italy",
			Region:      "Tuscany",
			City:        "Florence",
			Duration:    8,
			Price:       "2200.00",
			ImageURL:    "https://images.unsplash.com/photo-1523906834658-6e24ef2386f9?w=800&h=600",
			Tags:        jsonFrom([]string{"Culture", "Food", "Romance", "Luxury"}),
			Coordinates: jsonFrom(map[string]float64{"lat": 43.7696, "lng": 11.2558}),
			CreatedBy:   strPtr("seed_user_3"),
			IsPublic:    true,
		},
		{
			Title:       "Patagonia Wilderness Trek",
			Description: "Challenge yourself with breathtaking hikes through glacial landscapes, pristine lakes, and dramatic mountain peaks.",
			Destination: "Patagonia, Argentina",
			Country:     "Argentina",
			Region:      "Patagonia",
			City:        "El Calafate",
			Duration:    10,
			Price:       "2800.00",
			ImageURL:    "https://images.unsplash.com/photo-1611273426858-450d8e3c9fce?w=800&h=600",
			Tags:        jsonFrom([]string{"Adventure", "Photography", "Budget"}),
			Coordinates: jsonFrom(map[string]float64{"lat": -50.3373, "lng": -72.2647}),
			CreatedBy:   strPtr("seed_user_2"),
			IsPublic:    true,
		},
		{
			Title:       "Morocco Desert Adventure",
			Description: "Experience the magic of the Sahara with camel treks, desert camping under the stars, and ancient kasbahs.",
			Destination: "Marrakech, Morocco",
			Country:     "Morocco",
			Region:      "Marrakech-Safi",
			City:        "Marrakech",
			Duration:    7,
			Price:       "1400.00",
			ImageURL:    "https://images.unsplash.com/photo-1539650116574-75c0c6d73aff?w=800&h=600",
			Tags:        jsonFrom([]string{"Adventure", "Culture", "Photography"}),
			Coordinates: jsonFrom(map[string]float64{"lat": 31.6295, "lng": -7.9811}),
			CreatedBy:   strPtr("seed_user_1"),
			IsPublic:    true,
		},
	}
	return db.Create(&trips).Error
}
