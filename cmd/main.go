// @title Travel Planner Backend API
// @version 1.0
// @description AI-assisted travel itinerary planning, booking, and export API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	_ "TRAVELPLANNER_BACK-END/docs" // This is required for swagger
	"TRAVELPLANNER_BACK-END/internal/booking"
	"TRAVELPLANNER_BACK-END/internal/config"
	"TRAVELPLANNER_BACK-END/internal/gemini"
	"TRAVELPLANNER_BACK-END/internal/handlers"
	"TRAVELPLANNER_BACK-END/internal/payment"
	"TRAVELPLANNER_BACK-END/internal/planner"
	"TRAVELPLANNER_BACK-END/internal/providers"
	"TRAVELPLANNER_BACK-END/internal/routes"
	"TRAVELPLANNER_BACK-END/internal/store"
	"TRAVELPLANNER_BACK-END/internal/weather"
)

// Simulated provider API latency for booking and payment calls
const providerLatency = 500 * time.Millisecond

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// pgxpool with simple protocol (required when going through PgBouncer)
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "travelplanner-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000" // 30s
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnTimeout)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
	}

	st := store.NewPostgres(pool)

	// Itinerary engine: the agent path needs a Gemini key, otherwise requests
	// are served from fallback synthesis alone
	var agent planner.Completer
	if cfg.Gemini.APIKey != "" {
		client, err := gemini.NewClient(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.Gemini.Timeout,
		})
		if err != nil {
			log.Fatalf("gemini client: %v", err)
		}
		agent = client
	} else {
		log.Println("GEMINI_API_KEY not set, itineraries will use fallback synthesis")
	}

	registry := providers.NewRegistry(cfg.Planner.ConnectTimeout, providers.DefaultConnectors()...)
	engine := planner.New(planner.Options{
		Weather: weather.NewSynthetic(),
		Agent:   agent,
		Tools:   registry,
	})

	bookingService := booking.NewService(st, providerLatency)
	paymentGateway := payment.NewGateway(st, providerLatency)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(st, cfg)
	googleAuthHandler := handlers.NewGoogleAuthHandler(st, cfg)
	healthHandler := handlers.NewHealthHandler(pool)
	planHandler := handlers.NewPlanHandler(engine, cfg)
	bookingHandler := handlers.NewBookingHandler(bookingService, st)
	paymentHandler := handlers.NewPaymentHandler(paymentGateway)
	exportHandler := handlers.NewExportHandler()

	// Setup all routes
	routes.SetupRoutes(cfg, authHandler, googleAuthHandler, healthHandler,
		planHandler, bookingHandler, paymentHandler, exportHandler)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// Wrap the default mux with CORS
	handler := c.Handler(http.DefaultServeMux)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for SIGINT for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
