package db

import (
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/NovaBeautyTech/salon-manager/internal/config"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	sqlDB, err := sql.Open("pgx", cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Salon{},
		&models.Client{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.StaffMember{},
		&models.WorkSchedule{},
		&models.Appointment{},
		&models.RepeatVisitReminder{},
		&models.Product{},
		&models.Transaction{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE salons
        SET timezone = 'Europe/Kyiv'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}
