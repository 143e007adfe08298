package routes

import (
	"time"

	"meallink/api/handler"
	"meallink/api/middleware"
	"meallink/internal/entity"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Users          *handler.UserHandler
	Donations      *handler.DonationHandler
	Orphanages     *handler.OrphanageHandler
	AuthMiddleware middleware.AuthMiddleware
	OTPRate        *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	auth *handler.AuthHandler,
	users *handler.UserHandler,
	donations *handler.DonationHandler,
	orphanages *handler.OrphanageHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           auth,
		Users:          users,
		Donations:      donations,
		Orphanages:     orphanages,
		AuthMiddleware: authMiddleware,
		OTPRate:        middleware.NewRateLimiter(rate.Limit(2), 5, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo
	requireAuth := r.AuthMiddleware.RequireAuth

	e.POST("/auth/request-otp", r.Auth.RequestOTP, r.OTPRate.Middleware())
	e.POST("/auth/verify-otp", r.Auth.VerifyOTP, r.OTPRate.Middleware())

	users := e.Group("/users", requireAuth)
	users.GET("/me", r.Users.Me)
	users.GET("/all", r.Users.List, middleware.RequireRoles(entity.RoleAdmin))
	users.POST("/assign-role", r.Users.AssignRole, middleware.RequireRoles(entity.RoleAdmin))

	donations := e.Group("/donations", requireAuth)
	donations.POST("", r.Donations.Create, middleware.RequireRoles(entity.RoleDonor))
	donations.GET("/me", r.Donations.Mine, middleware.RequireRoles(entity.RoleDonor))
	donations.GET("/pending", r.Donations.Pending, middleware.RequireRoles(entity.RoleAdmin))
	donations.PATCH("/:id/decision", r.Donations.Decide, middleware.RequireRoles(entity.RoleOrphanage, entity.RoleAdmin))
	donations.PATCH("/:id/delivered", r.Donations.Delivered, middleware.RequireRoles(entity.RoleVolunteer))

	volunteers := e.Group("/volunteers", requireAuth, middleware.RequireRoles(entity.RoleVolunteer))
	volunteers.GET("/available", r.Donations.Available)
	volunteers.POST("/claim/:id", r.Donations.Claim)

	e.GET("/orphanages", r.Orphanages.List)
	e.GET("/orphanages/:id", r.Orphanages.Get)
	e.POST("/orphanages", r.Orphanages.Create, requireAuth, middleware.RequireRoles(entity.RoleAdmin, entity.RoleOrphanage))
	e.GET("/orphanages/:id/pending", r.Orphanages.Pending, requireAuth, middleware.RequireRoles(entity.RoleOrphanage))
	e.PATCH("/orphanages/:id/approve", r.Orphanages.Approve, requireAuth, middleware.RequireRoles(entity.RoleAdmin))
}
