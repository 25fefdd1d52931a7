package handlers

import (
	"net/http"

	"github.com/hireflow/hireflow/internal/fleet"
	"github.com/hireflow/hireflow/internal/hire"
	"github.com/hireflow/hireflow/internal/middleware"
	"github.com/hireflow/hireflow/internal/models"
)

// Router wires every handler onto a mux behind the auth middleware.
type Router struct {
	auth      *AuthHandler
	hires     *HireHandler
	driver    *DriverHandler
	vehicles  *VehicleHandler
	owners    *OwnerHandler
	drivers   *DriverDirectoryHandler
	alloc     *AllocationHandler
	stats     *StatsHandler
	admin     *AdminHandler
	authMW    *middleware.AuthMiddleware
	rateLimit *middleware.RateLimitMiddleware
}

// NewRouter assembles the HTTP surface from the services.
func NewRouter(authHandler *AuthHandler, hireService *hire.Service, fleetService *fleet.Service, authMW *middleware.AuthMiddleware) *Router {
	return &Router{
		auth:      authHandler,
		hires:     NewHireHandler(hireService),
		driver:    NewDriverHandler(hireService),
		vehicles:  NewVehicleHandler(fleetService, hireService),
		owners:    NewOwnerHandler(fleetService),
		drivers:   NewDriverDirectoryHandler(fleetService),
		alloc:     NewAllocationHandler(fleetService),
		stats:     NewStatsHandler(hireService),
		admin:     NewAdminHandler(fleetService),
		authMW:    authMW,
		rateLimit: middleware.NewRateLimitMiddleware(),
	}
}

// Handler builds the http.Handler for the whole API.
func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	manager := rt.authMW.RequireRole(models.RoleManager)
	driver := rt.authMW.RequireRole(models.RoleDriver)
	superAdmin := rt.authMW.RequireRole(models.RoleSuperAdmin)

	mux.HandleFunc("GET /health", healthCheck)
	mux.Handle("POST /api/auth/login", rt.rateLimit.RateLimit(10, 60)(http.HandlerFunc(rt.auth.Login)))

	// Manager hire endpoints.
	mux.Handle("POST /api/hires", manager(http.HandlerFunc(rt.hires.Create)))
	mux.Handle("GET /api/hires", manager(http.HandlerFunc(rt.hires.List)))
	mux.Handle("GET /api/hires/{id}", manager(http.HandlerFunc(rt.hires.Get)))
	mux.Handle("PATCH /api/hires/{id}", manager(http.HandlerFunc(rt.hires.Update)))
	mux.Handle("DELETE /api/hires/{id}", manager(http.HandlerFunc(rt.hires.Delete)))
	mux.Handle("POST /api/hires/{id}/accept", manager(http.HandlerFunc(rt.hires.Accept)))
	mux.Handle("POST /api/hires/{id}/cancel", manager(http.HandlerFunc(rt.hires.Cancel)))

	// Driver portal.
	mux.Handle("GET /api/driver/hires", driver(http.HandlerFunc(rt.driver.Feed)))
	mux.Handle("POST /api/driver/hires/{id}/accept", driver(http.HandlerFunc(rt.driver.Accept)))
	mux.Handle("POST /api/driver/hires/{id}/start", driver(http.HandlerFunc(rt.driver.Start)))
	mux.Handle("POST /api/driver/hires/{id}/complete", driver(http.HandlerFunc(rt.driver.Complete)))
	mux.Handle("POST /api/driver/hires/{id}/return", driver(http.HandlerFunc(rt.driver.Return)))
	mux.Handle("POST /api/driver/hires/{id}/reject", driver(http.HandlerFunc(rt.driver.Reject)))

	// Fleet directory.
	mux.Handle("GET /api/vehicles", manager(http.HandlerFunc(rt.vehicles.List)))
	mux.Handle("POST /api/vehicles", manager(http.HandlerFunc(rt.vehicles.Create)))
	mux.Handle("GET /api/vehicles/{id}", manager(http.HandlerFunc(rt.vehicles.Get)))
	mux.Handle("PATCH /api/vehicles/{id}", manager(http.HandlerFunc(rt.vehicles.Update)))
	mux.Handle("DELETE /api/vehicles/{id}", manager(http.HandlerFunc(rt.vehicles.Delete)))
	mux.Handle("POST /api/vehicles/{id}/refresh", manager(http.HandlerFunc(rt.vehicles.RefreshSnapshot)))

	mux.Handle("GET /api/owners", manager(http.HandlerFunc(rt.owners.List)))
	mux.Handle("POST /api/owners", manager(http.HandlerFunc(rt.owners.Create)))
	mux.Handle("GET /api/owners/search", manager(http.HandlerFunc(rt.owners.Search)))
	mux.Handle("POST /api/owners/add", manager(http.HandlerFunc(rt.owners.Add)))
	mux.Handle("PATCH /api/owners/{id}/status", manager(http.HandlerFunc(rt.owners.SetStatus)))

	mux.Handle("GET /api/drivers", manager(http.HandlerFunc(rt.drivers.List)))
	mux.Handle("POST /api/drivers", manager(http.HandlerFunc(rt.drivers.Create)))

	// Reporting.
	mux.Handle("GET /api/allocations", manager(http.HandlerFunc(rt.alloc.List)))
	mux.Handle("GET /api/stats", manager(http.HandlerFunc(rt.stats.Stats)))
	mux.Handle("GET /api/notifications", manager(http.HandlerFunc(rt.stats.Notifications)))

	// Super admin.
	mux.Handle("POST /api/admin/reset", superAdmin(http.HandlerFunc(rt.admin.Reset)))

	return rt.authMW.Authenticate(mux)
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"}, "Service healthy", http.StatusOK)
}
