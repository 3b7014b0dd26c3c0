package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates/updates the schema for every entity, parents first so
// foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Member{},
		&domain.Payment{},
		&domain.Meeting{},
		&domain.CollectiveMeeting{},
		&domain.CollectiveMeetingAttendee{},
		&domain.Visit{},
		&domain.Referral{},
		&domain.Notification{},
		&domain.OnboardingVideo{},
		&domain.VideoProgress{},
		&domain.QuizQuestion{},
		&domain.QuizOption{},
		&domain.QuizAnswer{},
	)
}
