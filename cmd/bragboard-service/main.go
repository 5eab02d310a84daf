package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/bragboard/bragboard-service/docs"
	"github.com/bragboard/bragboard-service/internal/config"
	"github.com/bragboard/bragboard-service/internal/events"
	"github.com/bragboard/bragboard-service/internal/http/handlers/achievements"
	"github.com/bragboard/bragboard-service/internal/http/handlers/admin"
	"github.com/bragboard/bragboard-service/internal/http/handlers/comments"
	"github.com/bragboard/bragboard-service/internal/http/handlers/health"
	"github.com/bragboard/bragboard-service/internal/http/handlers/media"
	"github.com/bragboard/bragboard-service/internal/http/handlers/reactions"
	"github.com/bragboard/bragboard-service/internal/http/handlers/reports"
	"github.com/bragboard/bragboard-service/internal/http/handlers/shoutouts"
	"github.com/bragboard/bragboard-service/internal/http/handlers/users"
	wsHandler "github.com/bragboard/bragboard-service/internal/http/handlers/websocket"
	"github.com/bragboard/bragboard-service/internal/http/middleware"
	mediaService "github.com/bragboard/bragboard-service/internal/services/media"
	"github.com/bragboard/bragboard-service/internal/stats"
	"github.com/bragboard/bragboard-service/internal/storage/postgres"
	"github.com/bragboard/bragboard-service/internal/websocket"
)

// @title BragBoard API
// @version 1.0
// @description Employee recognition service: shoutouts, reactions, comments, achievements and leaderboards.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// load config
	cfg := config.MustLoad()

	// database setup
	store, err := postgres.NewPostgres(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	slog.Info("Connected to Postgres database")

	// redis for rate limiting
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Warn("Redis unavailable, rate limiting disabled", slog.String("error", err.Error()))
	}

	// real-time notification hub
	hub := websocket.NewHub()
	go hub.Run()
	publisher := events.NewEventPublisher(hub)

	// presigned URL broker for shoutout images
	mediaSvc, err := mediaService.NewService(cfg)
	if err != nil {
		log.Fatal("Failed to initialize media service:", err)
	}
	mediaHandlers := media.NewMediaHandlers(mediaSvc)

	// gamification and analytics
	statsSvc := stats.NewService(store, cfg.Leaderboard)

	// middleware
	auth := middleware.AuthMiddleware(cfg.JWT.Secret)
	adminOnly := middleware.AdminOnly(store)
	rateLimits := middleware.NewRateLimitConfig(redisClient)

	router := http.NewServeMux()

	// public
	router.HandleFunc("POST /users/register", users.SignUp(store))
	router.HandleFunc("POST /users/login", users.Login(store, cfg.JWT))
	router.HandleFunc("POST /users/refresh", users.Refresh(store, cfg.JWT))
	router.HandleFunc("GET /health", health.Health(store.Db, redisClient))
	router.Handle("GET /swagger/", httpSwagger.WrapHandler)
	router.HandleFunc("GET /ws", wsHandler.WebSocketHandler(hub, cfg.JWT.Secret))

	// authenticated
	router.Handle("GET /users/profile", auth(users.Profile(store)))
	router.Handle("GET /users", auth(users.ListUsers(store)))
	router.Handle("GET /users/search", auth(users.ListUsers(store)))
	router.Handle("DELETE /users/{id}", auth(users.DeleteUser(store)))

	router.Handle("POST /shoutouts",
		auth(rateLimits.RateLimitMiddleware("shoutouts")(shoutouts.PostShoutOut(store, publisher))))
	router.Handle("PUT /shoutouts/{id}", auth(shoutouts.UpdateShoutOut(store)))
	router.Handle("DELETE /shoutouts/{id}", auth(shoutouts.DeleteShoutOut(store)))
	router.Handle("GET /shoutouts/feed", auth(shoutouts.Feed(store)))
	router.Handle("GET /shoutouts/mine", auth(shoutouts.Mine(store)))
	router.Handle("GET /shoutouts/dashboard", auth(shoutouts.Dashboard(store)))

	router.Handle("POST /reactions/{shoutout_id}",
		auth(rateLimits.RateLimitMiddleware("reactions")(reactions.Toggle(store, publisher))))
	router.Handle("GET /reactions/{shoutout_id}", auth(reactions.Counts(store)))

	router.Handle("POST /comments/{shoutout_id}",
		auth(rateLimits.RateLimitMiddleware("comments")(comments.Add(store, publisher))))
	router.Handle("GET /comments/{shoutout_id}", auth(comments.List(store)))
	router.Handle("PUT /comments/{id}", auth(comments.Update(store)))
	router.Handle("DELETE /comments/{id}", auth(comments.Delete(store)))

	router.Handle("POST /reports/{shoutout_id}",
		auth(rateLimits.RateLimitMiddleware("reports")(reports.Create(store))))

	router.Handle("GET /achievements", auth(achievements.UserAchievements(statsSvc)))
	router.Handle("GET /achievements/streak", auth(achievements.Streak(statsSvc)))
	router.Handle("GET /achievements/leaderboard", auth(achievements.Leaderboard(store, statsSvc)))

	router.Handle("POST /media/upload-url", auth(mediaHandlers.GenerateUploadURL()))
	router.Handle("GET /media/{object_key}/download-url", auth(mediaHandlers.GenerateDownloadURL()))
	router.Handle("DELETE /media/{object_key}", auth(mediaHandlers.DeleteMedia()))

	// admin
	router.Handle("GET /admin/stats", auth(adminOnly(admin.Stats(statsSvc))))
	router.Handle("GET /admin/trend", auth(adminOnly(admin.Trend(statsSvc))))
	router.Handle("GET /admin/top-contributors", auth(adminOnly(admin.TopContributors(statsSvc))))
	router.Handle("GET /admin/most-tagged", auth(adminOnly(admin.MostTagged(statsSvc))))
	router.Handle("GET /admin/reports", auth(adminOnly(admin.PendingReports(store))))
	router.Handle("PUT /admin/reports/{id}/resolve", auth(adminOnly(admin.ResolveReport(store))))
	router.Handle("DELETE /admin/shoutouts/{id}", auth(adminOnly(admin.DeleteShoutOut(store))))
	router.Handle("GET /admin/export/shoutouts", auth(adminOnly(admin.ExportShoutOuts(store))))

	server := http.Server{
		Addr:    cfg.HTTPServer.Address,
		Handler: router,
	}

	log.Println("server started on", cfg.HTTPServer.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %s", err)
		}
	}()

	<-done

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = server.Shutdown(ctx)
	if err != nil {
		slog.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
		return
	}

	slog.Info("Server stopped")
}
