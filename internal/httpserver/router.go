package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gantangan/gantangan-api/internal/authz"
)

type Deps struct {
	Auth          *AuthMiddleware
	AuthHandler   *AuthHTTP
	Roles         *RoleHTTP
	Users         *UserHTTP
	Categories    *CategoryHTTP
	Products      *ProductHTTP
	Events        *EventHTTP
	EventCats     *EventCategoryHTTP
	Registrations *RegistrationHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/auth/register", d.AuthHandler.Register)
	e.POST("/auth/verify", d.AuthHandler.VerifyEmail)
	e.POST("/auth/login", d.AuthHandler.Login)
	e.POST("/auth/refresh", d.AuthHandler.Refresh)

	// unconfirmed users must still be able to ask for a new verification mail
	e.POST("/auth/resend/verify", d.AuthHandler.ResendVerification, d.Auth.RequireToken)

	private := e.Group("")
	private.Use(d.Auth.RequireAuth)

	private.POST("/auth/logout", d.AuthHandler.Logout)
	private.GET("/auth/profile", d.AuthHandler.Profile)

	gate := d.Auth.RequireActions

	private.GET("/role", d.Roles.List, gate(authz.ActionRoleRead))
	private.GET("/role/list-action", d.Roles.ListActions, gate(authz.ActionRoleList))
	private.POST("/role", d.Roles.Create, gate(authz.ActionRoleCreate))
	private.GET("/role/:roleId", d.Roles.Detail, gate(authz.ActionRoleRead))
	private.PATCH("/role/:roleId", d.Roles.Update, gate(authz.ActionRoleUpdate))
	private.DELETE("/role/:roleId", d.Roles.Delete, gate(authz.ActionRoleDelete))

	private.GET("/user", d.Users.List, gate(authz.ActionUserRead))
	private.POST("/user", d.Users.Create, gate(authz.ActionUserCreate))
	private.GET("/user/:userId", d.Users.Detail, gate(authz.ActionUserRead))
	private.PATCH("/user/:userId", d.Users.Update, gate(authz.ActionUserUpdate))
	private.DELETE("/user/:userId", d.Users.Delete, gate(authz.ActionUserDelete))

	private.GET("/category", d.Categories.List, gate(authz.ActionCategoryRead))
	private.POST("/category", d.Categories.Create, gate(authz.ActionCategoryCreate))
	private.GET("/category/:categoryId", d.Categories.Detail, gate(authz.ActionCategoryRead))
	private.PATCH("/category/:categoryId", d.Categories.Update, gate(authz.ActionCategoryUpdate))
	private.DELETE("/category/:categoryId", d.Categories.Delete, gate(authz.ActionCategoryDelete))

	private.GET("/product", d.Products.List, gate(authz.ActionProductRead))
	private.POST("/product", d.Products.Create, gate(authz.ActionProductCreate))
	private.GET("/product/:productId", d.Products.Detail, gate(authz.ActionProductRead))
	private.PATCH("/product/:productId", d.Products.Update, gate(authz.ActionProductUpdate))
	private.DELETE("/product/:productId", d.Products.Delete, gate(authz.ActionProductDelete))

	private.GET("/event", d.Events.List, gate(authz.ActionEventRead))
	private.GET("/event/search", d.Events.Search, gate(authz.ActionEventRead))
	private.POST("/event", d.Events.Create, gate(authz.ActionEventCreate))
	private.GET("/event/:eventId", d.Events.Detail, gate(authz.ActionEventRead))
	private.PATCH("/event/:eventId", d.Events.Update, gate(authz.ActionEventUpdate))
	private.DELETE("/event/:eventId", d.Events.Delete, gate(authz.ActionEventDelete))

	private.GET("/event-category", d.EventCats.List, gate(authz.ActionEventCategoryRead))
	private.POST("/event-category", d.EventCats.Create, gate(authz.ActionEventCategoryCreate))
	private.GET("/event-category/:eventCategoryId", d.EventCats.Detail, gate(authz.ActionEventCategoryRead))
	private.PATCH("/event-category/:eventCategoryId", d.EventCats.Update, gate(authz.ActionEventCategoryUpdate))
	private.DELETE("/event-category/:eventCategoryId", d.EventCats.Delete, gate(authz.ActionEventCategoryDelete))

	private.GET("/registration-event", d.Registrations.List, gate(authz.ActionRegistrationRead))
	private.POST("/registration-event", d.Registrations.Create, gate(authz.ActionRegistrationCreate))
	private.GET("/registration-event/:registrationId", d.Registrations.Detail, gate(authz.ActionRegistrationRead))
	private.PATCH("/registration-event/:registrationId", d.Registrations.Update, gate(authz.ActionRegistrationUpdate))
	private.DELETE("/registration-event/:registrationId", d.Registrations.Delete, gate(authz.ActionRegistrationDelete))
}
