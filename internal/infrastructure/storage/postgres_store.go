package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Document is one collection stored as a single jsonb row. Every write
// replaces the row wholesale, preserving the whole-document overwrite
// semantics of the file driver.
type Document struct {
	Key       string    `gorm:"primaryKey;size:100"`
	Data      []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for the Document model
func (Document) TableName() string {
	return "documents"
}

// PostgresStore persists collection documents in a postgres table.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects to postgres and migrates the documents table.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Successfully connected to PostgreSQL document store")
	return &PostgresStore{db: db}, nil
}

// Read loads a document row; a missing row is not an error.
func (s *PostgresStore) Read(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var doc Document
	err := s.db.WithContext(ctx).First(&doc, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return doc.Data, true, nil
}

// Write upserts the document row, replacing the previous contents.
func (s *PostgresStore) Write(ctx context.Context, key string, doc json.RawMessage) error {
	row := Document{Key: key, Data: doc, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
