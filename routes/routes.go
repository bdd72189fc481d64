package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/warriorfdkl/kalogram/controllers"
	"github.com/warriorfdkl/kalogram/middlewares"
)

// Deps carries the constructed controllers into the router.
type Deps struct {
	Food         *controllers.FoodController
	History      *controllers.HistoryController
	Goals        *controllers.GoalsController
	Stats        *controllers.StatsController
	Notification *controllers.NotificationController
	Realtime     *controllers.RealtimeController
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORS())
	r.Use(middlewares.RequestID())

	r.GET("/health", controllers.HealthCheck)

	// the relay validates init data in-body, so it stays outside the JWT group
	r.POST("/api/save-result", d.Notification.SaveResult)

	r.POST("/auth/telegram", controllers.TelegramLogin)

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/food/analyze", d.Food.Analyze)
		api.POST("/food/lookup", d.Food.Lookup)

		api.GET("/history", d.History.List)
		api.POST("/history", d.History.Save)
		api.DELETE("/history/:id", d.History.Delete)
		api.DELETE("/history", d.History.Clear)

		api.GET("/goals", d.Goals.Get)
		api.PUT("/goals", d.Goals.Update)
		api.GET("/stats/today", d.Stats.Today)

		api.GET("/events", d.Realtime.EventsWS)
	}

	return r
}
