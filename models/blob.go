package models

import "time"

// StoredBlob is one persisted key-value entry. History and goals live as
// whole serialized blobs, one row per key, mirroring the mini app's local
// storage layout.
type StoredBlob struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"uniqueIndex;size:128;not null"`
	Value     []byte
	UpdatedAt time.Time
}
