package database

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/student-showcase/portfolio-backend/models"
)

// Migrate brings the schema up to date. The join tables get composite primary
// keys, which is what makes relationship attach idempotent under concurrent
// retries: the second insert of the same pair conflicts instead of duplicating.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "202411210000_create_users",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().AutoMigrate(&models.User{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("users")
			},
		},
		{
			ID: "202505311550_create_portfolio_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().AutoMigrate(
					&models.Student{},
					&models.Technology{},
					&models.Project{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					"project_students",
					"project_technologies",
					"projects",
					"students",
					"technologies",
				)
			},
		},
		{
			ID: "202505311724_create_contact_requests",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().AutoMigrate(&models.ContactRequest{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("contact_requests")
			},
		},
	})

	return m.Migrate()
}
