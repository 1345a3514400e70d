package main

import (
	"fmt"
	"log"

	"github.com/AndersonMairnck/frontFynanceo/configs"
	"github.com/AndersonMairnck/frontFynanceo/events"
	"github.com/AndersonMairnck/frontFynanceo/routes"
	"github.com/AndersonMairnck/frontFynanceo/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// DB (sale journal)
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatal(err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	// Events: websocket hub, plus the broker when configured
	hub := ws.NewEventHub()
	go hub.Run()
	notifier := events.Fanout{hub}
	if cfg.AMQPURL != "" {
		pub, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Printf("⚠️ amqp disabled: %v", err)
		} else {
			defer pub.Close()
			notifier = append(notifier, pub)
			log.Println("📨 publishing events to exchange", cfg.AMQPExchange)
		}
	}

	// HTTP
	r := gin.Default()

	// ✅ Register API routes
	routes.RegisterRoutes(r, routes.Deps{
		Config:   cfg,
		DB:       configs.DB(),
		Hub:      hub,
		Notifier: notifier,
	})

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🔗 API:", cfg.APIBaseURL)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
