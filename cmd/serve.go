package cmd

import (
	"context"
	"dojo/config"
	"dojo/controller"
	"dojo/docs"
	"dojo/repository"
	"dojo/service"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	t := time.Now()
	cfg := config.Env()
	log := newLogger()
	defer log.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	repo, err := repository.NewTechniqueRepository(catalogSource(), log)
	if err != nil {
		return err
	}
	schedule, err := service.NewScheduleService()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.WatchCatalog {
		if err := repo.Watch(ctx); err != nil {
			return err
		}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}
	addLogger(r)
	addMetrics(r)
	addDocs(r)
	setCors(r, cfg.CorsOrigins)
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	controller.SetRoutes(r, controller.Dependencies{
		TechniqueService: service.NewTechniqueService(repo),
		ScheduleService:  schedule,
		CacheStore:       persistence.NewInMemoryStore(cacheTTL),
		CacheTTL:         cacheTTL,
		AdminToken:       cfg.AdminToken,
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Info("server started", "port", cfg.Port, "startup", time.Since(t).String())

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func addLogger(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/metrics"},
	}))
}

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	techniqueRe := regexp.MustCompile(`^/techniques/[^/]+`)
	instructorRe := regexp.MustCompile(`^/instructors/[^/]+`)
	fixed := map[string]bool{
		"/techniques/grouped": true,
		"/techniques/stats":   true,
		"/techniques/meta":    true,
		"/techniques/ws":      true,
		"/techniques/reload":  true,
	}
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := strings.TrimPrefix(strings.Split(c.Request.URL.String(), "?")[0], "/api")
		if fixed[url] {
			return url
		}
		url = techniqueRe.ReplaceAllString(url, "/techniques/?")
		return instructorRe.ReplaceAllString(url, "/instructors/?")
	}
	p.MetricsPath = "/api/metrics"
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

func setCors(r *gin.Engine, origins []string) {
	corsConfigGetOptions := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	corsConfigOtherMethods := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Admin-Token"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	getOptions := cors.New(corsConfigGetOptions)
	otherMethods := cors.New(corsConfigOtherMethods)

	r.Use(func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			// Check the Access-Control-Request-Method header to determine the actual method being preflighted
			requestedMethod := c.GetHeader("Access-Control-Request-Method")
			if requestedMethod == "GET" || requestedMethod == "OPTIONS" {
				getOptions(c)
			} else {
				otherMethods(c)
			}
			c.AbortWithStatus(204)
			return
		}

		if c.Request.Method == "GET" {
			getOptions(c)
		} else {
			otherMethods(c)
		}
	})
}
