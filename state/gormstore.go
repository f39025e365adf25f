package state

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateEntry is one world-state key/value pair.
type StateEntry struct {
	Key   string `gorm:"primaryKey;size:256"`
	Value []byte
}

// EventRecord is the journal row an emitted event is persisted as.
type EventRecord struct {
	ID        uint   `gorm:"primaryKey"`
	TxID      string `gorm:"size:64;index"`
	Name      string `gorm:"size:64;index"`
	Payload   []byte
	CreatedAt time.Time
}

// GormStore backs the world state with a relational database. Write sets are
// applied inside a single database transaction.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&StateEntry{}, &EventRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate state tables: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(key string) ([]byte, error) {
	var entry StateEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state key %s: %w", key, err)
	}
	return entry.Value, nil
}

func (s *GormStore) ApplyBatch(writes map[string][]byte) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range writes {
			if value == nil {
				if err := tx.Delete(&StateEntry{}, "key = ?", key).Error; err != nil {
					return err
				}
				continue
			}
			entry := StateEntry{Key: key, Value: value}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Publish journals an event, making GormStore usable as the EventSink for the
// external indexer to poll.
func (s *GormStore) Publish(event Event) error {
	record := EventRecord{
		TxID:    event.TxID,
		Name:    event.Name,
		Payload: event.Payload,
	}
	return s.db.Create(&record).Error
}
