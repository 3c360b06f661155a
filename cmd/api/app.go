package api

import (
	"context"
	"time"

	authRepo "github.com/Real-Streeter/liberty-command/internal/auth/repository"
	"github.com/Real-Streeter/liberty-command/internal/auth/scheduler"
	authUsecase "github.com/Real-Streeter/liberty-command/internal/auth/usecase"
	columnRepo "github.com/Real-Streeter/liberty-command/internal/column/repository"
	columnUsecase "github.com/Real-Streeter/liberty-command/internal/column/usecase"
	rfpRepo "github.com/Real-Streeter/liberty-command/internal/rfp/repository"
	rfpUsecase "github.com/Real-Streeter/liberty-command/internal/rfp/usecase"
	taskRepo "github.com/Real-Streeter/liberty-command/internal/task/repository"
	taskUsecase "github.com/Real-Streeter/liberty-command/internal/task/usecase"
	teamRepo "github.com/Real-Streeter/liberty-command/internal/team/repository"
	teamUsecase "github.com/Real-Streeter/liberty-command/internal/team/usecase"
	"github.com/Real-Streeter/liberty-command/pkg/config"
	"github.com/Real-Streeter/liberty-command/pkg/ratelimit"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App is the wired server: HTTP handler, background sweeper and the board
// usecase used at startup.
type App struct {
	Handler *Handler
	Sweeper *scheduler.SessionSweeper
	Board   columnUsecase.BoardUsecase

	redis *redis.Client
}

// NewApp wires repositories and usecases over db (dependency injection).
func NewApp(cfg *config.Config, db *gorm.DB) *App {
	// Repositories
	memberRepository := teamRepo.NewMemberRepository(db)
	sessionRepository := authRepo.NewSessionRepository(db)
	columnRepository := columnRepo.NewGormColumnRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	rfpRepository := rfpRepo.NewGormRfpRepository(db)

	// Use cases
	uc := Usecases{
		Auth:  authUsecase.NewAuthUsecase(memberRepository, sessionRepository, cfg),
		Team:  teamUsecase.NewTeamUsecase(memberRepository, cfg.DefaultMemberPassword),
		Board: columnUsecase.NewBoardUsecase(columnRepository, taskRepository),
		Task:  taskUsecase.NewTaskUsecase(taskRepository, columnRepository),
		Rfp:   rfpUsecase.NewRfpUsecase(rfpRepository),
	}

	app := &App{Board: uc.Board}
	limits := app.rateLimits(cfg)
	app.Handler = NewHandler(cfg, uc, limits)
	app.Sweeper = scheduler.NewSessionSweeper(uc.Auth, cfg.SessionSweepInterval)
	return app
}

// rateLimits shares counters through Redis when REDIS_URL is set and
// reachable, and keeps them in memory otherwise.
func (a *App) rateLimits(cfg *config.Config) RateLimits {
	if cfg.RedisURL != "" {
		client, err := connectRedis(cfg.RedisURL)
		if err == nil {
			a.redis = client
			log.Info("rate limits shared through redis")
			return RateLimits{
				API:  ratelimit.NewRedisLimiter(client, "rl:api", cfg.RateLimitAPI, cfg.RateLimitWindow),
				Auth: ratelimit.NewRedisLimiter(client, "rl:auth", cfg.RateLimitAuth, cfg.RateLimitWindow),
			}
		}
		log.WithError(err).Warn("redis unavailable, using in-memory rate limits")
	}
	return RateLimits{
		API:  ratelimit.NewMemoryLimiter(cfg.RateLimitAPI, cfg.RateLimitWindow),
		Auth: ratelimit.NewMemoryLimiter(cfg.RateLimitAuth, cfg.RateLimitWindow),
	}
}

func connectRedis(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// Close releases the Redis client, if any.
func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
