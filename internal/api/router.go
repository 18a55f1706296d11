package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pressdeck/admin-gateway/internal/api/handler"
	"github.com/pressdeck/admin-gateway/internal/api/middleware"
	"github.com/pressdeck/admin-gateway/internal/core/domain"
	"github.com/pressdeck/admin-gateway/internal/core/ports"
	"github.com/pressdeck/admin-gateway/internal/infrastructure/cms"
)

// Deps carries the wired dependencies the router needs. Construction
// happens in main so the upstream client's unauthorized hook can be
// attached to the session service before any request flows.
type Deps struct {
	Sessions ports.SessionService
	CMS      *cms.Client
	Cookies  *middleware.Cookies
	Redis    *goredis.Client
	Log      zerolog.Logger

	// AssetBaseURL is handed to the admin UI via /session so it can
	// build media links.
	AssetBaseURL string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("cms_admin"))
	e.Use(d.Cookies.Middleware())

	// --- Session endpoints (ungated) ---
	authHandler := handler.NewAuthHandler(d.Sessions, d.Cookies, d.AssetBaseURL)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/session", authHandler.Session)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Protected admin API ---
	admin := e.Group("/admin/api", middleware.RequireSession(d.Sessions))

	postsHandler := handler.NewPostsHandler(d.CMS)
	admin.GET("/posts", postsHandler.List)
	admin.POST("/posts", postsHandler.Create)
	admin.GET("/posts/:slug", postsHandler.Get)
	admin.PUT("/posts/:slug", postsHandler.Update)
	admin.DELETE("/posts/:slug", postsHandler.Delete)

	pagesHandler := handler.NewPagesHandler(d.CMS)
	admin.GET("/pages", pagesHandler.List)
	admin.POST("/pages", pagesHandler.Create)
	admin.GET("/pages/:slug", pagesHandler.Get)
	admin.PUT("/pages/:slug", pagesHandler.Update)
	admin.DELETE("/pages/:slug", pagesHandler.Delete)

	taxonomyHandler := handler.NewTaxonomyHandler(d.CMS, d.CMS)
	admin.GET("/categories", taxonomyHandler.ListCategories)
	admin.POST("/categories", taxonomyHandler.CreateCategory)
	admin.PUT("/categories/:slug", taxonomyHandler.UpdateCategory)
	admin.DELETE("/categories/:slug", taxonomyHandler.DeleteCategory)
	admin.GET("/tags", taxonomyHandler.ListTags)
	admin.POST("/tags", taxonomyHandler.CreateTag)
	admin.PUT("/tags/:slug", taxonomyHandler.UpdateTag)
	admin.DELETE("/tags/:slug", taxonomyHandler.DeleteTag)

	commentsHandler := handler.NewCommentsHandler(d.CMS)
	admin.GET("/comments", commentsHandler.List)
	admin.PATCH("/comments/:id/approve", commentsHandler.Approve)
	admin.DELETE("/comments/:id", commentsHandler.Delete)

	bannersHandler := handler.NewBannersHandler(d.CMS)
	admin.GET("/banners", bannersHandler.List)
	admin.POST("/banners", bannersHandler.Create)
	admin.PUT("/banners/:id", bannersHandler.Update)
	admin.DELETE("/banners/:id", bannersHandler.Delete)

	// User administration requires the admin role on top of a session.
	usersHandler := handler.NewUsersHandler(d.CMS)
	users := admin.Group("/users", middleware.RequireRole(domain.RoleAdmin))
	users.GET("", usersHandler.List)
	users.GET("/:id", usersHandler.Get)
	users.PUT("/:id/role", usersHandler.UpdateRole)
	users.DELETE("/:id", usersHandler.Delete)

	return e
}
