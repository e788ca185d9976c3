package main

import (
	pgconfig "Fabler/config/postgres"
	_ "Fabler/config/swagger"
	"Fabler/middleware"
	"Fabler/routes"
	socketio "Fabler/services/socket_io"
	"Fabler/services/store"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// @title Fabler API
// @version 1.0
// @description Gin-Gonic server for the Fabler shared-session engine
// @host localhost:8080
// @BasePath /
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormDB, err := pgconfig.ConnectGORM()
	if err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	log.Println("GORM Connected")

	// Only migrate in development or during deployment
	if os.Getenv("MIGRATE_POSTGRES") == "true" {
		log.Println("Migrating PostgreSQL database...")
		if err := pgconfig.MigrateDatabase(gormDB); err != nil {
			log.Printf("Warning: Database migration failed: %v", err)
			// Continue execution even if migration fails
		} else {
			log.Println("Database migrated successfully")
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
	}
	defer sqlDB.Close()

	st := store.New(gormDB)

	// Preload an offline session per known account so the lobby can
	// list them before anyone connects.
	accounts, err := st.Accounts.AllAccounts()
	if err != nil {
		log.Fatalf("Error preloading accounts: %v", err)
	}
	st.Presence.Init(accounts)
	log.Printf("Preloaded %d sessions", len(accounts))

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	routes.SetupRoutes(r, st)

	sio := &socketio.SocketServer{}
	sio.Start(r, st)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
