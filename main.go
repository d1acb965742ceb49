package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"cpu-sched-sim/api"
	"cpu-sched-sim/config"
)

func main() {
	cfg := config.GetSchedulerConfig()
	handler := api.NewSchedulerHandlerImpl(cfg)

	app := fiber.New()
	group := app.Group("/api")

	v1 := group.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/srtf", handler.ShortestRemainingTime)
		v1.Post("/all", handler.AllAlgorithms)
	}

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
