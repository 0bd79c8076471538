package routes

import (
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/api/handler"
	"github.com/josedavimartini-ship-it/publimicro-sub003/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Listings       *handler.ListingHandler
	Leads          *handler.LeadHandler
	Visits         *handler.VisitHandler
	Authorization  *handler.AuthorizationHandler
	Checkout       *handler.CheckoutHandler
	Verifications  *handler.VerificationHandler
	Brands         *handler.BrandHandler
	AuthMiddleware middleware.AuthMiddleware
	AuthRate       *middleware.RateLimiter
	SubmitRate     *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	auth *handler.AuthHandler,
	listings *handler.ListingHandler,
	leads *handler.LeadHandler,
	visits *handler.VisitHandler,
	authorization *handler.AuthorizationHandler,
	checkout *handler.CheckoutHandler,
	verifications *handler.VerificationHandler,
	brands *handler.BrandHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           auth,
		Listings:       listings,
		Leads:          leads,
		Visits:         visits,
		Authorization:  authorization,
		Checkout:       checkout,
		Verifications:  verifications,
		Brands:         brands,
		AuthMiddleware: authMiddleware,
		AuthRate:       middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
		SubmitRate:     middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	api := e.Group("/api")

	api.POST("/auth/register", r.Auth.Register, r.AuthRate.Middleware())
	api.POST("/auth/login", r.Auth.Login, r.AuthRate.Middleware())
	api.POST("/auth/logout", r.Auth.Logout, r.AuthMiddleware.RequireAuth)
	api.GET("/me", r.Auth.Me, r.AuthMiddleware.RequireAuth)

	api.GET("/brands", r.Brands.List)
	api.GET("/brands/:key", r.Brands.Get)

	api.GET("/anuncios", r.Listings.List)
	api.GET("/anuncios/:id", r.Listings.Get, r.AuthMiddleware.OptionalAuth)
	api.POST("/anuncios", r.Listings.Create, r.AuthMiddleware.RequireAuth)

	api.POST("/contato", r.Leads.CreateContact, r.SubmitRate.Middleware())
	api.POST("/proposta", r.Leads.CreateProposal, r.SubmitRate.Middleware())

	api.POST("/visits", r.Visits.Schedule, r.AuthMiddleware.RequireAuth)
	api.GET("/visits", r.Visits.ListMine, r.AuthMiddleware.RequireAuth)
	api.POST("/visits/:id/confirm", r.Visits.Confirm, r.AuthMiddleware.RequireAuth)

	api.POST("/validate-auth-code", r.Authorization.ValidateCode, r.SubmitRate.Middleware())
	api.GET("/check-authorization", r.Authorization.Check, r.AuthMiddleware.OptionalAuth)

	api.POST("/checkout", r.Checkout.Create, r.SubmitRate.Middleware())

	api.POST("/verifications", r.Verifications.Submit, r.AuthMiddleware.RequireAuth)

	admin := api.Group("/admin", r.AuthMiddleware.RequireAuth, middleware.RequireRole("admin"))
	admin.GET("/anuncios/pending", r.Listings.ListPending)
	admin.POST("/anuncios/:id/approve", r.Listings.Approve)
	admin.POST("/anuncios/:id/reject", r.Listings.Reject)
	admin.POST("/auth-codes", r.Authorization.IssueCode)
	admin.GET("/verifications", r.Verifications.Search)
	admin.POST("/verifications/:id/review", r.Verifications.Review)
}
