package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"careerdisha/internal/cache"
	"careerdisha/internal/config"
	"careerdisha/internal/logger"
	"careerdisha/internal/repository"
	"careerdisha/internal/service"
	"careerdisha/internal/transport/rest"
)

// @title CareerDisha Guidance API
// @version 1.0
// @description Stream assessment and course/college/career recommendation service for students
// @host localhost:8080
// @BasePath /v1
func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()
	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	logger.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal("failed to ping Redis", zap.Error(err))
	}
	logger.Info("connected to Redis")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	collegeRepo := repository.NewCollegeRepo(db)
	timelineRepo := repository.NewTimelineRepo(db)

	// Initialize cache
	bundleCache := cache.NewBundleCache(rdb, cfg.BundleTTL)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	userSvc := service.NewUserService(userRepo, bundleCache)
	quizSvc := service.NewQuizService(userRepo, bundleCache)
	recommendSvc := service.NewRecommendService(userRepo, courseRepo, collegeRepo, timelineRepo, bundleCache)
	directorySvc := service.NewDirectoryService(courseRepo, collegeRepo, timelineRepo)

	router := rest.NewRouter(&rest.Container{
		AuthService:      authSvc,
		UserService:      userSvc,
		QuizService:      quizSvc,
		RecommendService: recommendSvc,
		DirectoryService: directorySvc,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
