package routes

import (
	"food4u-api/handlers"
	"food4u-api/middleware"
	"food4u-api/models"

	"github.com/gin-gonic/gin"
)

// Deps carries the handlers, token parser and session checker the routes are wired to
type Deps struct {
	Auth     *handlers.AuthHandler
	Foods    *handlers.FoodHandler
	Tokens   middleware.TokenParser
	Sessions middleware.SessionChecker
}

func SetupRoutes(r *gin.Engine, d Deps) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", d.Auth.Register)
		public.POST("/auth/login", d.Auth.Login)
		// Logout reads its own bearer token
		public.POST("/auth/logout", d.Auth.Logout)

		// Food catalog (no auth needed)
		public.GET("/foods", d.Foods.ListFoods)
		public.GET("/foods/:id", d.Foods.GetFood)

		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(d.Tokens, d.Sessions))
	{
		auth.GET("/profile", d.Auth.GetProfile)
	}

	// ── Restaurant routes ──────────────────────────────────────────
	restaurant := r.Group("/api/foods")
	restaurant.Use(middleware.AuthRequired(d.Tokens, d.Sessions), middleware.RoleRequired(models.RoleRestaurant))
	{
		restaurant.POST("", d.Foods.CreateFood)
		restaurant.PUT("/:id", d.Foods.UpdateFood)
		restaurant.DELETE("/:id", d.Foods.DeleteFood)
	}
}
