package postgres

import (
	"github.com/mara/thread-board-website/internal/domain"
	"github.com/mara/thread-board-website/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.Profile{},
		&domain.ProfileSession{},
		&domain.Thread{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Profile: NewProfileRepository(db),
		Thread:  NewThreadRepository(db),
		Session: NewSessionRepository(db),
	}
}
