package main

import (
	"log"
	"os"

	"github.com/warriorfdkl/kalogram/config"
	"github.com/warriorfdkl/kalogram/controllers"
	"github.com/warriorfdkl/kalogram/routes"
	"github.com/warriorfdkl/kalogram/services"
	"github.com/warriorfdkl/kalogram/storage"
)

func main() {
	config.Load()
	config.InitDB()

	if os.Getenv("VISION_PROVIDER") != "rekognition" && os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("warning: OPENAI_API_KEY not set, food recognition is disabled")
	}

	store := storage.NewGormStore(config.DB)
	bus := services.NewEventBus()

	vision, err := services.NewVisionProvider()
	if err != nil {
		log.Fatalf("vision provider: %v", err)
	}
	nutrition := services.NewNutritionService()
	food := services.NewFoodService(vision, nutrition)
	history := services.NewHistoryService(store, bus)
	goals := services.NewGoalsService(store, bus)
	stats := services.NewStatsService(history)
	telegram := services.NewTelegramService()

	hub := services.NewRealtimeHub()
	stop := hub.Run(bus)
	defer stop()

	r := routes.SetupRouter(routes.Deps{
		Food:         controllers.NewFoodController(food, nutrition),
		History:      controllers.NewHistoryController(history),
		Goals:        controllers.NewGoalsController(goals),
		Stats:        controllers.NewStatsController(stats),
		Notification: controllers.NewNotificationController(telegram, config.TelegramBotToken()),
		Realtime:     controllers.NewRealtimeController(hub),
	})

	if err := r.Run(":" + config.Port()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
