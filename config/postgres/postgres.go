package postgres

import (
	"fmt"
	"log"
	"os"

	models "Fabler/models/postgres"

	_ "github.com/lib/pq"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectGORM returns a GORM DB instance connected to PostgreSQL.
func ConnectGORM() (*gorm.DB, error) {
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	database := os.Getenv("POSTGRES_DATABASE")

	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		user, password, host, port, database)

	gormConfig := &gorm.Config{}
	if os.Getenv("VERBOSE_POSTGRES") == "true" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(pgdriver.Open(dsn), gormConfig)
	if err != nil {
		log.Printf("Error connecting to PostgreSQL: %v", err)
		return nil, err
	}
	return db, nil
}

// MigrateDatabase keeps the account table in sync with the model.
func MigrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(&models.Account{})
}
