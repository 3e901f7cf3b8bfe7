package database

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/learnhub/internal/entities"
)

// Database is the SQLite-backed key-value namespace. It satisfies
// storage.Backend, one kv_records row per key.
type Database struct {
	DB *gorm.DB
}

type Option func(*gorm.Config)

// WithSilentLogger disables gorm's SQL logging.
func WithSilentLogger() Option {
	return func(c *gorm.Config) { c.Logger = logger.Default.LogMode(logger.Silent) }
}

func NewDatabase(dbPath string, opts ...Option) (*Database, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.KVRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) Read(key string) (string, bool, error) {
	var record entities.KVRecord
	err := d.DB.Where("key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return record.Value, true, nil
}

// Write creates or replaces the value under key.
func (d *Database) Write(key, value string) error {
	var record entities.KVRecord
	result := d.DB.Where("key = ?", key).First(&record)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		record = entities.KVRecord{
			Key:   key,
			Value: value,
		}
		return d.DB.Create(&record).Error
	} else if result.Error != nil {
		return result.Error
	}

	record.Value = value
	return d.DB.Save(&record).Error
}

// Keys lists every stored key in insertion order.
func (d *Database) Keys() ([]string, error) {
	var keys []string
	err := d.DB.Model(&entities.KVRecord{}).Order("id").Pluck("key", &keys).Error
	return keys, err
}
