package handlers

import (
	"database/sql"
	"time"

	"becak/internal/services"
	"becak/internal/session"
)

// Handler carries the dependencies of every screen endpoint. Per-session
// state comes from the session middleware, never from package globals.
type Handler struct {
	Backend      session.Backend
	Drivers      services.DriverLookup
	Auth         services.AuthService
	Customers    services.CustomerService
	PaymentDelay time.Duration
	DB           *sql.DB
}
