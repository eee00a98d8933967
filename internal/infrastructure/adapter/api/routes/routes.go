package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/api/handler"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	healthHandler *handler.HealthHandler,
	userHandler *handler.UserHandler,
	tournamentHandler *handler.TournamentHandler,
	registrationHandler *handler.RegistrationHandler,
	paymentHandler *handler.PaymentHandler,
) {
	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		userRoutes := api.Group("/users")
		{
			// POST /api/users logs in or creates the account in one call
			userRoutes.POST("", userHandler.Authenticate)
			userRoutes.GET("", userHandler.ListUsers)
			userRoutes.GET("/:userId", userHandler.GetUser)
		}

		tournamentRoutes := api.Group("/tournaments")
		{
			tournamentRoutes.GET("", tournamentHandler.ListTournaments)
			tournamentRoutes.POST("", tournamentHandler.CreateTournament)
			tournamentRoutes.GET("/:tournamentId", tournamentHandler.GetTournament)
			tournamentRoutes.PATCH("/:tournamentId/status", tournamentHandler.UpdateStatus)
			tournamentRoutes.POST("/:tournamentId/register", registrationHandler.Register)
		}

		paymentRoutes := api.Group("/razorpay")
		{
			paymentRoutes.GET("/key", paymentHandler.GetKey)
			paymentRoutes.POST("/order", paymentHandler.CreateOrder)
			paymentRoutes.POST("/verify", paymentHandler.VerifyPayment)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
