// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"github.com/fabriciolopss/TI1-webserver/models"
)

// RunMigrations runs all database migrations.
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ Migrations completed successfully")
}

func createIndexes() {
	db := GetDB()

	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)")
	// The feed reads registered trainings out of the document; a GIN
	// index keeps ad-hoc jsonb queries usable as the table grows.
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_user_data ON users USING GIN (user_data)")
}
