package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/crm-api/internal/interfaces/gql"
	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/logger"
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

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongodb.Connect(connectCtx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	cancelConnect()
	if err != nil {
		// la conexión inicial al almacén es el único fallo fatal
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()
	log.Info().Str("db", cfg.Mongo.Database).Msg("DB conectada")

	db := client.Database(cfg.Mongo.Database)
	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		log.Warn().Err(err).Msg("creación de índices")
	}

	usuarioRepo := mongodb.NewUsuarioRepository(db)
	clienteRepo := mongodb.NewClienteRepository(db)
	productoRepo := mongodb.NewProductoRepository(db)
	pedidoRepo := mongodb.NewPedidoRepository(db)
	analyticsRepo := mongodb.NewAnalyticsRepository(db)

	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	productoUC := usecase.NewProductoUseCase(productoRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo, clienteRepo, productoRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo)

	schema, err := gql.NewSchema(&gql.Resolver{
		Auth:      authUC,
		Productos: productoUC,
		Clientes:  clienteUC,
		Pedidos:   pedidoUC,
		Analytics: analyticsUC,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("construcción del esquema GraphQL")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(gql.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Post("/graphql", gql.AuthMiddleware(cfg.JWT.Secret), gql.NewHandler(schema, log))

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
