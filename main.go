package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "travelagent/internal/config"
	"travelagent/internal/db"
	"travelagent/internal/domain/models"
	router "travelagent/internal/http"
	"travelagent/internal/http/handlers"
	"travelagent/internal/remote"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	conn := intconfig.ConnectDB(env.DBDSN)
	defer intconfig.CloseDB()

	if err := db.EnsureSchema(conn); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	handlers.SetJWTSecret(env.JWTSecret)
	handlers.Configure(handlers.AgentDeps{
		Hotels: remote.NewHotelClient(env.HotelServiceURL),
		Taxis:  remote.NewTaxiClient(env.TaxiServiceURL),
		HotelAccount: models.Customer{
			ID:          env.HotelCustomerID,
			Name:        env.ServiceAccountName,
			Email:       env.ServiceAccountEmail,
			PhoneNumber: env.ServiceAccountPhone,
		},
		TaxiAccount: models.Customer{
			ID:          env.TaxiCustomerID,
			Name:        env.ServiceAccountName,
			Email:       env.ServiceAccountEmail,
			PhoneNumber: env.ServiceAccountPhone,
		},
	})

	r := router.NewRouter(env)
	handlers.SetRouter(r)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server running at http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
