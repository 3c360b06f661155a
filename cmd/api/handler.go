package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	authDelivery "github.com/Real-Streeter/liberty-command/internal/auth/delivery"
	authUsecase "github.com/Real-Streeter/liberty-command/internal/auth/usecase"
	columnDelivery "github.com/Real-Streeter/liberty-command/internal/column/delivery"
	columnUsecase "github.com/Real-Streeter/liberty-command/internal/column/usecase"
	rfpDelivery "github.com/Real-Streeter/liberty-command/internal/rfp/delivery"
	rfpUsecase "github.com/Real-Streeter/liberty-command/internal/rfp/usecase"
	taskDelivery "github.com/Real-Streeter/liberty-command/internal/task/delivery"
	taskUsecase "github.com/Real-Streeter/liberty-command/internal/task/usecase"
	teamDelivery "github.com/Real-Streeter/liberty-command/internal/team/delivery"
	teamUsecase "github.com/Real-Streeter/liberty-command/internal/team/usecase"
	"github.com/Real-Streeter/liberty-command/pkg/config"
	"github.com/Real-Streeter/liberty-command/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

const (
	apiLimitMessage  = "Too many requests, please try again later."
	authLimitMessage = "Too many login attempts. Please try again later."
)

// Usecases groups the business layer the HTTP handlers sit on.
type Usecases struct {
	Auth  authUsecase.AuthUsecase
	Team  teamUsecase.TeamUsecase
	Board columnUsecase.BoardUsecase
	Task  taskUsecase.TaskUsecase
	Rfp   rfpUsecase.RfpUsecase
}

// RateLimits are the limiters for all API routes and for login.
type RateLimits struct {
	API  ratelimit.Limiter
	Auth ratelimit.Limiter
}

type Handler struct {
	config   *config.Config
	limits   RateLimits
	settings *RuntimeSettings

	authUsecase   authUsecase.AuthUsecase
	cookies       authDelivery.CookieSettings
	authHandler   *authDelivery.AuthHandler
	columnHandler *columnDelivery.ColumnHandler
	taskHandler   *taskDelivery.TaskHandler
	teamHandler   *teamDelivery.TeamHandler
	rfpHandler    *rfpDelivery.RfpHandler
}

func NewHandler(cfg *config.Config, uc Usecases, limits RateLimits) *Handler {
	cookies := authDelivery.CookieSettings{Secure: cfg.IsProduction()}
	return &Handler{
		config:        cfg,
		limits:        limits,
		settings:      NewRuntimeSettings(cfg.LogLevel),
		authUsecase:   uc.Auth,
		cookies:       cookies,
		authHandler:   authDelivery.NewAuthHandler(uc.Auth, cookies),
		columnHandler: columnDelivery.NewColumnHandler(uc.Board),
		taskHandler:   taskDelivery.NewTaskHandler(uc.Task),
		teamHandler:   teamDelivery.NewTeamHandler(uc.Team),
		rfpHandler:    rfpDelivery.NewRfpHandler(uc.Rfp),
	}
}

// Engine builds the gin engine with middleware and every route.
func (h *Handler) Engine() *gin.Engine {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(h.config.TrustedProxies); err != nil {
		log.WithError(err).Warn("invalid TRUSTED_PROXIES, trusting none")
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(gin.Recovery(), RequestLogger(), SecurityHeaders(), CORS(h.config.CORSOrigin))

	SetupRoutes(r, h)

	if h.config.IsProduction() {
		ServeSPA(r, h.config.StaticDir)
	}
	return r
}

// Start serves on addr until ctx is cancelled, then drains in-flight
// requests.
func (h *Handler) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
