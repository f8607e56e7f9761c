package main

import (
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tripmate/config"
	"tripmate/database"
	"tripmate/routes"
	"tripmate/services"
	"tripmate/utils"
)

func main() {
	// Загрузка .env
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.LoadConfig()

	// Файловые логи (errors.log / panics.log)
	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	// Подключение к PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	// Устанавливаем глобальный *gorm.DB для контроллеров
	utils.SetDB(db)

	// Миграция
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	// Сидирование демо-аккаунтов и стартового каталога
	if err := database.SeedUsers(db); err != nil {
		log.Fatalf("failed to seed users: %v", err)
	}
	if err := database.SeedTrips(db); err != nil {
		log.Fatalf("failed to seed trips: %v", err)
	}
	log.Println("Seed data in place (if needed)")

	// Подключение к Redis (чёрный список токенов + кэш популярных направлений)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(utils.RedisCtx()).Err(); err != nil {
		log.Printf("redis unavailable, continuing without cache: %v", err)
	} else {
		utils.SetRedis(rdb)
		log.Println("Connected to Redis")
	}

	// Прогрев кэша популярных направлений в фоне
	go services.StartDestinationCron(db)

	r := routes.SetupRouter()

	log.Printf("Starting server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
