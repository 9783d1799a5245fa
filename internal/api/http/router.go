// Package http provides the gateway's HTTP transport: one thin handler per
// endpoint, parameter validation up front, services behind.
package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/services"
)

// Services bundles everything the router needs.
type Services struct {
	Auth     *services.AuthService
	Accounts *services.AccountService
	Apps     *services.AppService
	Keysets  *services.KeysetService
	Usage    *services.UsageService
	Modules  *services.ModuleService
	Events   *services.EventService
	Health   HealthReporter
}

// NewRouter creates the gateway router with all endpoints registered.
func NewRouter(svcs Services, log zerolog.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, AccessLog(log), CountRequests)

	auth := NewAuthHandler(svcs.Auth)
	accounts := NewAccountHandler(svcs.Accounts)
	apps := NewAppHandler(svcs.Apps, svcs.Keysets)
	usage := NewUsageHandler(svcs.Usage)
	functions := NewFunctionsHandler(svcs.Modules)
	events := NewEventsHandler(svcs.Events)
	health := NewHealthHandler(svcs.Health)

	r.HandleFunc("/api/login", auth.Login).Methods("POST")
	r.HandleFunc("/api/accounts", accounts.Search).Methods("GET")
	r.HandleFunc("/api/apps", apps.ListApps).Methods("GET")
	r.HandleFunc("/api/keysets", apps.ListKeysets).Methods("GET")
	r.HandleFunc("/api/keyset", apps.GetKeyset).Methods("GET")
	r.HandleFunc("/api/usage", usage.Counts).Methods("GET")
	r.HandleFunc("/api/functions", functions.Modules).Methods("GET")
	r.HandleFunc("/api/events-actions", events.ListenersAndActions).Methods("GET")

	r.HandleFunc("/healthz", health.Check).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
