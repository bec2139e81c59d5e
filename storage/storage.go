// Package storage persists SDK identity state between runs. It is the Go
// counterpart of a mobile preferences store: a small key-value table in a
// local SQLite file.
package storage

import (
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Preference keys held by the store. Nothing else is persisted.
const (
	KeyUserID    = "user_id"
	KeyUserEmail = "user_email"
	KeyUserName  = "user_name"
)

// Preference is one persisted key-value pair.
type Preference struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"size:500"`
}

func (Preference) TableName() string { return "sdk_preferences" }

// Store is a persistent key-value store backed by SQLite.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the store at the given file path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Preference{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Get returns the stored value for key, or "" when absent.
func (s *Store) Get(key string) (string, error) {
	var pref Preference
	err := s.db.First(&pref, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return pref.Value, nil
}

// Set stores a value for key. An empty value removes the key.
func (s *Store) Set(key, value string) error {
	if value == "" {
		return s.db.Delete(&Preference{}, "key = ?", key).Error
	}
	return s.db.Save(&Preference{Key: key, Value: value}).Error
}

// UserID returns the persisted user id, or "".
func (s *Store) UserID() (string, error) { return s.Get(KeyUserID) }

// SetUserID persists the user id. Empty clears it.
func (s *Store) SetUserID(id string) error { return s.Set(KeyUserID, id) }

// UserEmail returns the persisted user email, or "".
func (s *Store) UserEmail() (string, error) { return s.Get(KeyUserEmail) }

// SetUserEmail persists the user email. Empty clears it.
func (s *Store) SetUserEmail(email string) error { return s.Set(KeyUserEmail, email) }

// UserName returns the persisted user name, or "".
func (s *Store) UserName() (string, error) { return s.Get(KeyUserName) }

// SetUserName persists the user name. Empty clears it.
func (s *Store) SetUserName(name string) error { return s.Set(KeyUserName, name) }

// SetUserInfo persists id, email and name in one call.
func (s *Store) SetUserInfo(id, email, name string) error {
	if err := s.SetUserID(id); err != nil {
		return err
	}
	if err := s.SetUserEmail(email); err != nil {
		return err
	}
	return s.SetUserName(name)
}

// Clear removes everything the store holds.
func (s *Store) Clear() error {
	return s.db.Where("1 = 1").Delete(&Preference{}).Error
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
