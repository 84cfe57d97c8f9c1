package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/masterplan/backend/api/handler"
)

type Handlers struct {
	Auth      *apiHandler.AuthHandler
	Profile   *apiHandler.ProfileHandler
	Goal      *apiHandler.GoalHandler
	Share     *apiHandler.ShareHandler
	Dashboard *apiHandler.DashboardHandler
	Health    *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/register", handlers.Auth.Register)
	r.POST("/api/v1/auth/logout", authMiddleware(handlers.Auth.Logout))
	r.GET("/api/v1/auth/session", authMiddleware(handlers.Auth.Session))

	// Profile routes
	r.GET("/api/v1/profile", authMiddleware(handlers.Profile.GetProfile))
	r.PUT("/api/v1/profile", authMiddleware(handlers.Profile.UpdateProfile))

	// Goal routes
	r.GET("/api/v1/goals", authMiddleware(handlers.Goal.ListGoals))
	r.POST("/api/v1/goals", authMiddleware(handlers.Goal.CreateGoal))
	r.GET("/api/v1/goals/{id}", authMiddleware(handlers.Goal.GetGoal))
	r.PUT("/api/v1/goals/{id}", authMiddleware(handlers.Goal.UpdateGoal))
	r.DELETE("/api/v1/goals/{id}", authMiddleware(handlers.Goal.DeleteGoal))

	r.POST("/api/v1/goals/{id}/subgoals", authMiddleware(handlers.Goal.AddSubGoal))
	r.PUT("/api/v1/goals/{id}/subgoals/{subId}", authMiddleware(handlers.Goal.UpdateSubGoal))
	r.DELETE("/api/v1/goals/{id}/subgoals/{subId}", authMiddleware(handlers.Goal.DeleteSubGoal))

	// Sharing: issuance is protected, token resolution is public
	r.POST("/api/v1/goals/{id}/share", authMiddleware(handlers.Share.ShareGoal))
	r.GET("/shared/{token}", handlers.Share.ViewSharedGoal)

	// Dashboard routes
	r.GET("/api/v1/dashboard/summary", authMiddleware(handlers.Dashboard.Summary))
	r.GET("/api/v1/suggestions", authMiddleware(handlers.Dashboard.ListSuggestions))
	r.POST("/api/v1/suggestions/{index}/adopt", authMiddleware(handlers.Dashboard.AdoptSuggestion))
	r.GET("/api/v1/quotes/daily", authMiddleware(handlers.Dashboard.DailyQuote))

	return r
}
