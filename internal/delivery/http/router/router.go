// Package router contains routing setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"institute/internal/delivery/http/middleware"
	"institute/internal/delivery/http/router/handler"
)

// RouterParams bundles every handler the router wires, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	BlogHandler        *handler.BlogHandler
	TrainingHandler    *handler.TrainingHandler
	InternshipHandler  *handler.InternshipHandler
	EmployeeHandler    *handler.EmployeeHandler
	ProjectHandler     *handler.ProjectHandler
	ServiceHandler     *handler.ServiceHandler
	TestimonialHandler *handler.TestimonialHandler
	JobHandler         *handler.JobHandler
	ContactHandler     *handler.ContactHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/admin/login", r.params.AuthHandler.AdminLogin)

		// Bootstrap-aware: open while no admin exists, admin-only afterwards.
		authGroup.POST("/admin/register", r.params.AuthHandler.AdminRegister,
			auth.OptionalAuthenticate, auth.RequireAdminOrAllowFirst)

		authGroup.GET("/me", r.params.AuthHandler.Me, auth.Authenticate)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh, auth.Authenticate)
		authGroup.POST("/logout", r.params.AuthHandler.Logout, auth.Authenticate)
		authGroup.PATCH("/profile", r.params.AuthHandler.UpdateProfile, auth.Authenticate)
	}

	r.registerCollection(api, "/blog", collectionHandlers{
		list:   r.params.BlogHandler.List,
		get:    r.params.BlogHandler.Get,
		create: r.params.BlogHandler.Create,
		update: r.params.BlogHandler.Update,
		delete: r.params.BlogHandler.Delete,
	})
	r.registerCollection(api, "/training", collectionHandlers{
		list:   r.params.TrainingHandler.List,
		get:    r.params.TrainingHandler.Get,
		create: r.params.TrainingHandler.Create,
		update: r.params.TrainingHandler.Update,
		delete: r.params.TrainingHandler.Delete,
	})
	r.registerCollection(api, "/employees", collectionHandlers{
		list:   r.params.EmployeeHandler.List,
		get:    r.params.EmployeeHandler.Get,
		create: r.params.EmployeeHandler.Create,
		update: r.params.EmployeeHandler.Update,
		delete: r.params.EmployeeHandler.Delete,
	})
	r.registerCollection(api, "/projects", collectionHandlers{
		list:   r.params.ProjectHandler.List,
		get:    r.params.ProjectHandler.Get,
		create: r.params.ProjectHandler.Create,
		update: r.params.ProjectHandler.Update,
		delete: r.params.ProjectHandler.Delete,
	})
	r.registerCollection(api, "/services", collectionHandlers{
		list:   r.params.ServiceHandler.List,
		get:    r.params.ServiceHandler.Get,
		create: r.params.ServiceHandler.Create,
		update: r.params.ServiceHandler.Update,
		delete: r.params.ServiceHandler.Delete,
	})
	r.registerCollection(api, "/testimonials", collectionHandlers{
		list:   r.params.TestimonialHandler.List,
		get:    r.params.TestimonialHandler.Get,
		create: r.params.TestimonialHandler.Create,
		update: r.params.TestimonialHandler.Update,
		delete: r.params.TestimonialHandler.Delete,
	})

	// Jobs carry the public application flow on top of the CRUD surface.
	// Static segments must be registered so /applications does not collide
	// with the :id routes.
	jobGroup := api.Group("/jobs")
	{
		jobGroup.GET("", r.params.JobHandler.List)
		jobGroup.GET("/applications", r.params.JobHandler.ListApplications, auth.Authenticate, auth.RequireAdmin)
		jobGroup.GET("/applications/:id", r.params.JobHandler.GetApplication, auth.Authenticate, auth.RequireAdmin)
		jobGroup.PATCH("/applications/:id/status", r.params.JobHandler.UpdateApplicationStatus, auth.Authenticate, auth.RequireAdmin)
		jobGroup.DELETE("/applications/:id", r.params.JobHandler.DeleteApplication, auth.Authenticate, auth.RequireAdmin)
		jobGroup.GET("/:id", r.params.JobHandler.Get)
		jobGroup.POST("/:id/apply", r.params.JobHandler.Apply, auth.OptionalAuthenticate)
		jobGroup.POST("", r.params.JobHandler.Create, auth.Authenticate, auth.RequireAdmin)
		jobGroup.PUT("/:id", r.params.JobHandler.Update, auth.Authenticate, auth.RequireAdmin)
		jobGroup.DELETE("/:id", r.params.JobHandler.Delete, auth.Authenticate, auth.RequireAdmin)
	}

	internshipGroup := api.Group("/internships")
	{
		internshipGroup.GET("", r.params.InternshipHandler.List)
		internshipGroup.GET("/applications", r.params.InternshipHandler.ListApplications, auth.Authenticate, auth.RequireAdmin)
		internshipGroup.GET("/applications/:id", r.params.InternshipHandler.GetApplication, auth.Authenticate, auth.RequireAdmin)
		internshipGroup.PATCH("/applications/:id/status", r.params.InternshipHandler.UpdateApplicationStatus, auth.Authenticate, auth.RequireAdmin)
		internshipGroup.DELETE("/applications/:id", r.params.InternshipHandler.DeleteApplication, auth.Authenticate, auth.RequireAdmin)
		internshipGroup.GET("/:id", r.params.InternshipHandler.Get)
		internshipGroup.POST("/:id/apply", r.params.InternshipHandler.Apply, auth.OptionalAuthenticate)
		internshipGroup.POST("", r.params.InternshipHandler.Create, auth.Authenticate, auth.RequireAdmin)
		internshipGroup.PUT("/:id", r.params.InternshipHandler.Update, auth.Authenticate, auth.RequireAdmin)
		internshipGroup.DELETE("/:id", r.params.InternshipHandler.Delete, auth.Authenticate, auth.RequireAdmin)
	}

	contactGroup := api.Group("/contact")
	{
		contactGroup.POST("", r.params.ContactHandler.Submit)
		contactGroup.GET("", r.params.ContactHandler.List, auth.Authenticate, auth.RequireAdmin)
		contactGroup.GET("/:id", r.params.ContactHandler.Get, auth.Authenticate, auth.RequireAdmin)
		contactGroup.PATCH("/:id/status", r.params.ContactHandler.UpdateStatus, auth.Authenticate, auth.RequireAdmin)
		contactGroup.DELETE("/:id", r.params.ContactHandler.Delete, auth.Authenticate, auth.RequireAdmin)
	}

	userGroup := api.Group("/users", auth.Authenticate, auth.RequireAdmin)
	{
		userGroup.GET("", r.params.UserHandler.List)
		userGroup.GET("/:id", r.params.UserHandler.Get)
		userGroup.PUT("/:id", r.params.UserHandler.Update)
		userGroup.DELETE("/:id", r.params.UserHandler.Delete)
	}
}

// collectionHandlers is the CRUD handler set shared by the plain content
// collections: public reads, admin-gated writes.
type collectionHandlers struct {
	list   echo.HandlerFunc
	get    echo.HandlerFunc
	create echo.HandlerFunc
	update echo.HandlerFunc
	delete echo.HandlerFunc
}

func (r *router) registerCollection(api *echo.Group, prefix string, h collectionHandlers) {
	auth := r.params.AuthMiddleware

	group := api.Group(prefix)
	group.GET("", h.list)
	group.GET("/:id", h.get)
	group.POST("", h.create, auth.Authenticate, auth.RequireAdmin)
	group.PUT("/:id", h.update, auth.Authenticate, auth.RequireAdmin)
	group.DELETE("/:id", h.delete, auth.Authenticate, auth.RequireAdmin)
}
