package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/lifebot/backend/api/handler"
)

type Handlers struct {
	Auth    *apiHandler.AuthHandler
	Task    *apiHandler.TaskHandler
	Profile *apiHandler.ProfileHandler
	Journal *apiHandler.JournalHandler
	Meal    *apiHandler.MealHandler
	Health  *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/resolve", handlers.Auth.Resolve)
	r.POST("/api/v1/auth/logout", authMiddleware(handlers.Auth.Logout))

	// Protected routes
	r.GET("/api/v1/tasks", authMiddleware(handlers.Task.ListTasks))
	r.POST("/api/v1/tasks", authMiddleware(handlers.Task.CreateTask))
	r.PATCH("/api/v1/tasks/{id}/done", authMiddleware(handlers.Task.SetTaskDone))
	r.DELETE("/api/v1/tasks/{id}", authMiddleware(handlers.Task.DeleteTask))

	r.GET("/api/v1/profile/history", authMiddleware(handlers.Profile.History))

	r.GET("/api/v1/journal", authMiddleware(handlers.Journal.ListEntries))
	r.POST("/api/v1/journal", authMiddleware(handlers.Journal.CreateEntry))

	r.GET("/api/v1/meals", authMiddleware(handlers.Meal.ListMeals))
	r.POST("/api/v1/meals", authMiddleware(handlers.Meal.LogMeal))
	r.GET("/api/v1/meals/overview", authMiddleware(handlers.Meal.Overview))
	r.GET("/api/v1/meals/suggestions", authMiddleware(handlers.Meal.Suggestions))

	return r
}
