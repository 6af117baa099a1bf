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
	appcustomer "github.com/yasniel1408/taxdown-shop-motorbikes/internal/application/customer"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/repository"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/infrastructure/memory"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/infrastructure/postgres"
	httpRouter "github.com/yasniel1408/taxdown-shop-motorbikes/internal/interfaces/http"
	"github.com/yasniel1408/taxdown-shop-motorbikes/pkg/config"
	"github.com/yasniel1408/taxdown-shop-motorbikes/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Puerto de persistencia: pgx contra PostgreSQL, o el adaptador en memoria
	// para correr sin base de datos (DB_DRIVER=memory).
	var customerRepo repository.CustomerRepository
	if cfg.DB.Driver == "memory" {
		customerRepo = memory.NewCustomerRepository()
		log.Warn().Msg("persistencia en memoria: los datos se pierden al apagar")
	} else {
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		customerRepo = postgres.NewCustomerRepository(pool)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Shop Motorbikes API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateCustomer: appcustomer.NewCreateCustomerUseCase(customerRepo),
		GetCustomer:    appcustomer.NewGetCustomerUseCase(customerRepo),
		ListCustomers:  appcustomer.NewListCustomersUseCase(customerRepo),
		UpdateCustomer: appcustomer.NewUpdateCustomerUseCase(customerRepo),
		DeleteCustomer: appcustomer.NewDeleteCustomerUseCase(customerRepo),
		AddCredit:      appcustomer.NewAddCreditUseCase(customerRepo),
		APIKeyHeader:   cfg.API.KeyHeader,
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

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
