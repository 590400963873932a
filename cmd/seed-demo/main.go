package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/learnhub/learnhub-backend/internal/config"
	"github.com/learnhub/learnhub-backend/internal/database"
	"github.com/learnhub/learnhub-backend/internal/logger"
	"github.com/learnhub/learnhub-backend/internal/model"
	"github.com/learnhub/learnhub-backend/internal/repository"
	"github.com/learnhub/learnhub-backend/internal/service"
)

const (
	demoEmail    = "demo.instructor@learnhub.dev"
	demoPassword = "password123"
)

var demoCourses = []model.CreateCourseRequest{
	{
		Title:       "Go for Backend Developers",
		Description: "Build REST services with Go, from routing to deployment.",
		ImageURL:    "https://videos.learnhub.dev/go-backend/intro.mp4",
		Price:       49.99,
	},
	{
		Title:       "PostgreSQL in Practice",
		Description: "Schema design, indexing, and query tuning on real workloads.",
		ImageURL:    "https://videos.learnhub.dev/postgres/intro.mp4",
		Price:       39.99,
	},
	{
		Title:       "Redis Patterns",
		Description: "Caching, queues, and session stores with Redis.",
		ImageURL:    "https://videos.learnhub.dev/redis/intro.mp4",
		Price:       29.99,
	},
}

// Seeds a demo instructor and a small catalog for local development.
// Safe to re-run: an existing demo account is reused.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	adminRepo := repository.NewAdminRepository(pool)
	authService := service.NewAuthService(cfg)
	adminAccounts := service.NewAccountService(adminRepo, authService, service.RoleAdmin, log)
	courseService := service.NewCourseService(repository.NewCourseRepository(pool), rdb, cfg.CatalogCacheTTL, log)

	admin, err := adminAccounts.Signup(ctx, &model.SignupRequest{
		Email:     demoEmail,
		Password:  demoPassword,
		FirstName: "Demo",
		LastName:  "Instructor",
	})
	if err != nil {
		if !errors.Is(err, service.ErrEmailTaken) {
			log.Fatal().Err(err).Msg("Failed to create demo instructor")
		}
		admin, err = adminRepo.GetByEmail(ctx, demoEmail)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load existing demo instructor")
		}
	}

	for _, req := range demoCourses {
		course, err := courseService.Create(ctx, admin.ID, &req)
		if err != nil {
			log.Fatal().Err(err).Str("title", req.Title).Msg("Failed to seed course")
		}
		fmt.Printf("Seeded course %q (%s)\n", course.Title, course.ID)
	}

	fmt.Printf("\nDemo instructor: %s / %s\n", demoEmail, demoPassword)
}
