package main

import (
	"context"
	"os"

	"github.com/arbelcharny-source/blog-service/config"
	"github.com/arbelcharny-source/blog-service/db"
	authhandler "github.com/arbelcharny-source/blog-service/internal/auth/handler"
	authrepo "github.com/arbelcharny-source/blog-service/internal/auth/repository/postgres"
	authservice "github.com/arbelcharny-source/blog-service/internal/auth/service"
	bloghandler "github.com/arbelcharny-source/blog-service/internal/blog/handler"
	blogrepo "github.com/arbelcharny-source/blog-service/internal/blog/repository/postgres"
	blogservice "github.com/arbelcharny-source/blog-service/internal/blog/service"
	"github.com/arbelcharny-source/blog-service/internal/logging"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	userRepo := authrepo.NewPostgresRepository(dbPool)
	postRepo := blogrepo.NewPostRepository(dbPool)
	commentRepo := blogrepo.NewCommentRepository(dbPool)

	tokenService := authservice.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	userService := authservice.NewUserService(userRepo, tokenService, authservice.NewBcryptHasher())
	postService := blogservice.NewPostService(postRepo, userRepo)
	commentService := blogservice.NewCommentService(commentRepo, postRepo, userRepo)

	authH := authhandler.NewAuthHandler(userService, tokenService)
	postH := bloghandler.NewPostHandler(postService)
	commentH := bloghandler.NewCommentHandler(commentService)

	app := fiber.New()
	app.Use(logging.RequestLogger(logger))

	authhandler.RegisterRoutes(app, authH)
	bloghandler.RegisterRoutes(app, postH, commentH, authH.RequireAuth())

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Env)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
