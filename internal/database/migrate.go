package database

import (
	"field-ops-backend/internal/database/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// Migrate runs the versioned schema migrations.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250601_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&models.Tenant{},
					&models.CrewMember{},
					&models.Customer{},
					&models.Job{},
					&models.DayPlan{},
					&models.ScheduleEvent{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					"schedule_events", "day_plans", "jobs", "customers", "crew_members", "tenants",
				)
			},
		},
		{
			ID: "20250601_create_kit_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&models.Kit{},
					&models.KitVariant{},
					&models.KitItem{},
					&models.KitAssignment{},
					&models.KitOverrideLog{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					"kit_override_logs", "kit_assignments", "kit_items", "kit_variants", "kits",
				)
			},
		},
		{
			ID: "20250601_create_crew_assignments",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.CrewAssignment{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("crew_assignments")
			},
		},
		{
			// The ledger is append-only; revoke row mutation below the API
			// as well so the invariant holds even for direct SQL consumers.
			ID: "20250602_override_ledger_block_mutation",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`
					CREATE OR REPLACE FUNCTION reject_override_log_mutation() RETURNS trigger AS $$
					BEGIN
						RAISE EXCEPTION 'kit_override_logs is append-only';
					END;
					$$ LANGUAGE plpgsql;
					DROP TRIGGER IF EXISTS kit_override_logs_no_mutation ON kit_override_logs;
					CREATE TRIGGER kit_override_logs_no_mutation
						BEFORE UPDATE OR DELETE ON kit_override_logs
						FOR EACH ROW EXECUTE FUNCTION reject_override_log_mutation();
				`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec(`DROP TRIGGER IF EXISTS kit_override_logs_no_mutation ON kit_override_logs`).Error
			},
		},
	})

	return m.Migrate()
}
