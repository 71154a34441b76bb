package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/todo-api/modules/api"
	"github.com/example/todo-api/modules/auth"
	"github.com/example/todo-api/modules/todo"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework
	// Order: independent modules first, then dependent modules
	app.Register(auth.NewModule()) // Independent module (credential service)
	app.Register(todo.NewModule()) // Independent module (task store)
	app.Register(api.NewModule())  // Depends on auth and todo modules

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints:")
	log.Println("")
	log.Println("  Public Endpoints:")
	log.Println("  POST   /api/login             - Login and get a session token")
	log.Println("  GET    /api/verify            - Verify a session token")
	log.Println("  GET    /api/health            - Health check")
	log.Println("")
	log.Println("  Protected Endpoints (require Bearer token):")
	log.Println("  GET    /api/todos             - List todos, newest first")
	log.Println("  POST   /api/todos             - Create a todo")
	log.Println("  PUT    /api/todos/:id         - Update a todo")
	log.Println("  DELETE /api/todos/:id         - Delete a todo")
	log.Println("  PATCH  /api/todos/:id/toggle  - Toggle completion")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
