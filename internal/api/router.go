package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/recordkeep/records-api/internal/api/handler"
	"github.com/recordkeep/records-api/internal/api/middleware"
	"github.com/recordkeep/records-api/internal/core/authz"
	"github.com/recordkeep/records-api/internal/core/schema"
	"github.com/recordkeep/records-api/internal/core/service"
)

// Services groups everything the router wires into handlers.
type Services struct {
	Auth     *service.AuthService
	Users    *service.UserService
	Clients  *service.ClientService
	Bills    *service.BillService
	Files    *service.FileService
	Settings *service.SettingsService
}

// route is the declarative metadata one endpoint is composed from: access
// level, optional body template, and whether the response falls under the
// ownership filter. The nested-decorator composition of the original is
// flattened into this table.
type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
	access  middleware.Access
	body    schema.Template
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(svc Services, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("records"))
	e.Use(middleware.Session(svc.Auth))

	authHandler := handler.NewAuthHandler(svc.Auth)
	adminHandler := handler.NewAdminHandler(svc.Users)
	clientHandler := handler.NewClientHandler(svc.Clients)
	billHandler := handler.NewBillHandler(svc.Bills)
	fileHandler := handler.NewFileHandler(svc.Files)
	settingsHandler := handler.NewSettingsHandler(svc.Settings)
	healthHandler := handler.NewHealthHandler()

	routes := []route{
		{http.MethodPost, "/auth/log", authHandler.Login, middleware.AccessPublic, handler.TemplateLogin},
		{http.MethodDelete, "/auth/log", authHandler.Logout, middleware.AccessSession, nil},
		{http.MethodGet, "/auth/log", authHandler.Whoami, middleware.AccessSession, nil},

		{http.MethodGet, "/clients", clientHandler.List, middleware.AccessSession, nil},
		{http.MethodGet, "/clients/:id", clientHandler.Search, middleware.AccessSession, nil},
		{http.MethodGet, "/client/:id", clientHandler.Get, middleware.AccessSession, nil},
		{http.MethodPost, "/client", clientHandler.Create, middleware.AccessSession, handler.TemplateInsertClient},
		{http.MethodPost, "/updateclient/:id", clientHandler.Update, middleware.AccessSession, handler.TemplateUpdateClient},
		{http.MethodDelete, "/client/:id", clientHandler.Delete, middleware.AccessSession, nil},

		{http.MethodGet, "/bills", billHandler.List, middleware.AccessSession, nil},
		{http.MethodGet, "/bills/:ref", billHandler.Search, middleware.AccessSession, nil},
		{http.MethodPost, "/bill", billHandler.Create, middleware.AccessSession, handler.TemplateInsertBill},
		{http.MethodDelete, "/bill/:id", billHandler.Delete, middleware.AccessSession, nil},

		{http.MethodPost, "/file", fileHandler.Upload, middleware.AccessSession, nil},
		{http.MethodGet, "/file/:name", fileHandler.Download, middleware.AccessSession, nil},

		{http.MethodGet, "/admin/users", adminHandler.ListUsers, middleware.AccessAdmin, nil},
		{http.MethodPost, "/admin/users", adminHandler.CreateUser, middleware.AccessAdmin, handler.TemplateCreateUser},
		{http.MethodPost, "/admin/resetpassword", adminHandler.ResetPassword, middleware.AccessAdmin, handler.TemplateChangePassword},
		{http.MethodPost, "/admin/changepassword", adminHandler.ChangePassword, middleware.AccessAdmin, handler.TemplateChangeSelfPassword},
		{http.MethodGet, "/admin/addadmin/:id", adminHandler.AddAdmin, middleware.AccessAdmin, nil},
		{http.MethodGet, "/admin/removeadmin/:id", adminHandler.RemoveAdmin, middleware.AccessAdmin, nil},

		{http.MethodGet, "/settings", settingsHandler.Get, middleware.AccessSession, nil},
		{http.MethodPost, "/settings", settingsHandler.Update, middleware.AccessAdmin, handler.TemplateUpdateSettings},
	}

	for _, r := range routes {
		e.Add(r.method, r.path, r.handler, routeMiddleware(r)...)
	}

	// --- Probes and metrics (no auth, no envelope) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// routeMiddleware assembles one route's chain: admission, then the body
// gate, then the ownership mark for restricted read routes.
func routeMiddleware(r route) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{middleware.Admission(r.access)}
	if r.body != nil {
		chain = append(chain, middleware.ValidateBody(r.body, true))
	}
	if authz.RestrictedSegment(firstSegment(r.path)) {
		chain = append(chain, middleware.RestrictOwnership())
	}
	return chain
}

func firstSegment(path string) string {
	segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	return segment
}
