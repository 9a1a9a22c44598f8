// @title           Stock Health API
// @version         1.0
// @description     Salud de inventario, alertas de stock bajo y capacidad de fabricación por modelo.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization
// @description     Bearer <token>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/jhoicas/stock-health-api/docs"
	"github.com/jhoicas/stock-health-api/internal/application/analytics"
	"github.com/jhoicas/stock-health-api/internal/application/monitoring"
	"github.com/jhoicas/stock-health-api/internal/domain/repository"
	"github.com/jhoicas/stock-health-api/internal/infrastructure/cache"
	"github.com/jhoicas/stock-health-api/internal/infrastructure/fixture"
	"github.com/jhoicas/stock-health-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/stock-health-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-health-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-health-api/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/stock-health-api/internal/interfaces/http"
	"github.com/jhoicas/stock-health-api/pkg/config"
	"github.com/jhoicas/stock-health-api/pkg/logger"
)

const sweepJob = "alert-sweep"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("snapshot_source", cfg.Snapshot.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Fuente de snapshots: PostgreSQL o archivos (YAML / CSV).
	var snapshots repository.SnapshotRepository
	var pool *pgxpool.Pool
	switch cfg.Snapshot.Source {
	case config.SnapshotSourceFile:
		snapshots = fixture.NewFileSource(cfg.Snapshot.Path, cfg.Snapshot.Encoding)
		log.Info().Str("path", cfg.Snapshot.Path).Msg("snapshot desde archivos")
	default:
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		snapshots = postgres.NewSnapshotRepository(pool)
	}

	var resultCache analytics.ResultCache
	if cfg.Cache.Enabled() {
		resultCache = cache.New(cfg.Cache.Size, cfg.Cache.TTL)
		log.Info().Dur("ttl", cfg.Cache.TTL).Int("size", cfg.Cache.Size).Msg("caché de resultados activa")
	}

	queryUC := analytics.NewQueryUseCase(snapshots, resultCache)
	reportUC := analytics.NewReportUseCase(queryUC, infrapdf.NewStockHealthGenerator())

	// Barrido periódico de alertas
	sched := scheduler.New(log, 2*time.Minute)
	if cfg.Sweep.Enabled() {
		sweepUC := monitoring.NewSweepUseCase(snapshots, notify.NewLogNotifier(log), cfg.Sweep.CapacityThreshold, log)
		job := func(ctx context.Context) error {
			_, err := sweepUC.Run(ctx)
			return err
		}
		if err := sched.Register(sweepJob, cfg.Sweep.Cron, job); err != nil {
			log.Fatal().Err(err).Msg("programar barrido de alertas")
		}
		sched.Start()
		go sched.RunNow(sweepJob, job)
	} else {
		log.Info().Msg("barrido de alertas deshabilitado (ALERT_SWEEP_CRON vacío)")
	}

	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: /api sin autenticación")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("access")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Health API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "snapshot_source": cfg.Snapshot.Source})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Queries:   queryUC,
		Reports:   reportUC,
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sched.Stop(shutdownCtx)
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
