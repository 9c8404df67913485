package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"becak/internal/apiclient"
	intconfig "becak/internal/config"
	router "becak/internal/http"
	"becak/internal/http/handlers"
	"becak/internal/logger"
	"becak/internal/repositories"
	"becak/internal/services"
	"becak/internal/session"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	log := logger.New("becak", env.LogLevel)
	logger.SetDefault(log)

	// The database only backs login and the driver directory; screens keep
	// working without it.
	var db *sql.DB
	if conn, err := intconfig.ConnectDB(context.Background(), env); err != nil {
		log.Warning("database tidak tersedia, lanjut tanpa database", logger.Error(err))
	} else {
		db = conn
		defer db.Close()
		if env.DBMigrate {
			if err := intconfig.RunMigrations(env); err != nil {
				log.Error("migrasi gagal", logger.Error(err))
			}
		}
	}

	backend := apiclient.New(env.APIBaseURL, env.APITimeout)
	reg := session.NewRegistry(backend, env.SessionTTL)

	h := &handlers.Handler{
		Backend: backend,
		Drivers: repositories.DriverRepository{DB: db},
		Auth: services.AuthService{
			Users:  repositories.UserRepository{DB: db},
			Secret: []byte(env.JWTSecret),
			TTL:    env.JWTTTL,
		},
		Customers:    services.CustomerService{IncludeDemo: env.DemoCustomers},
		PaymentDelay: env.PaymentDelay,
		DB:           db,
	}

	r := router.NewRouter(env, h, reg, log)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server berjalan", logger.String("addr", env.AppAddr), logger.String("api_base_url", env.APIBaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("gagal menjalankan server", logger.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("mematikan server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown server gagal", logger.Error(err))
		return
	}

	log.Info("server berhenti dengan aman")
}
