package main

import (
	"fmt"
	"log"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/tracing"
)

func main() {
	cfg := config.GetSchedulerConfig()
	log.Printf("loaded config: %+v", *cfg)

	if cfg.TracingEnabled {
		if err := tracing.Init("cpu-scheduler", "v1", cfg.TracingOutput); err != nil {
			log.Fatalln(err)
		}
	}

	handler, err := api.NewSchedulerHandlerImpl(cfg)
	if err != nil {
		log.Fatalln(err)
	}
	app := api.NewApp(handler)

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
