package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/warriorfdkl/kalogram/models"
)

// GormStore persists blobs in the stored_blobs table managed by config.InitDB.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) ([]byte, bool, error) {
	var blob models.StoredBlob
	err := s.db.Where("key = ?", key).First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return blob.Value, true, nil
}

func (s *GormStore) Set(key string, value []byte) error {
	blob := models.StoredBlob{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
}

func (s *GormStore) Delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&models.StoredBlob{}).Error
}
