package main

import (
	"context"
	"log"

	"chatbot-assistant-be/internal/bootstrap"
	"chatbot-assistant-be/internal/config"
	"chatbot-assistant-be/internal/model"
	"chatbot-assistant-be/internal/server"
	"chatbot-assistant-be/internal/tracer"
	"chatbot-assistant-be/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	shutdownTracer := tracer.InitTracer()
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	db, err := database.NewGormDB(cfg.Database.Connection, cfg.App.Environment != "production")
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.ChatSession{}, &model.ChatMessage{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)

	if err := srv.Run(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
