package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/warriorfdkl/kalogram/apperr"
	"github.com/warriorfdkl/kalogram/models"
	"github.com/warriorfdkl/kalogram/storage"
	"github.com/warriorfdkl/kalogram/utils"
)

// historyKey is the per-user blob the scan history lives under, same name as
// the mini app's local-storage key.
const historyKey = "food_scan_history"

// HistoryService keeps each user's scan history as one ordered blob, newest
// first. Entries are never mutated in place after commit.
type HistoryService struct {
	store storage.Store
	bus   *EventBus
}

func NewHistoryService(store storage.Store, bus *EventBus) *HistoryService {
	return &HistoryService{store: store, bus: bus}
}

func (s *HistoryService) key(userID int64) string {
	return fmt.Sprintf("%d:%s", userID, historyKey)
}

// List returns the history, newest first. A missing or corrupt blob reads as
// empty; losing history is not a fatal condition.
func (s *HistoryService) List(userID int64) []models.ScanResult {
	raw, ok, err := s.store.Get(s.key(userID))
	if err != nil || !ok {
		return []models.ScanResult{}
	}
	var history []models.ScanResult
	if err := json.Unmarshal(raw, &history); err != nil {
		return []models.ScanResult{}
	}
	return history
}

// Append assigns an id, prepends the entry and persists the whole blob. On
// write failure prior state is untouched. Publishes foodSaved on success.
func (s *HistoryService) Append(userID int64, entry models.ScanResult) (string, error) {
	entry.ID = utils.NewEntryToken()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	history := append([]models.ScanResult{entry}, s.List(userID)...)
	if err := s.save(userID, history); err != nil {
		return "", err
	}
	s.bus.Publish(Event{Kind: EventFoodSaved, UserID: userID})
	return entry.ID, nil
}

// Delete removes the entry with the given id and reports whether anything
// was removed. An absent id is a no-op.
func (s *HistoryService) Delete(userID int64, id string) (bool, error) {
	history := s.List(userID)
	kept := make([]models.ScanResult, 0, len(history))
	removed := false
	for _, entry := range history {
		if entry.ID == id {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}
	if !removed {
		return false, nil
	}
	if err := s.save(userID, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Clear drops the whole history blob.
func (s *HistoryService) Clear(userID int64) error {
	if err := s.store.Delete(s.key(userID)); err != nil {
		return fmt.Errorf("%w: failed to clear history: %v", apperr.ErrStorage, err)
	}
	return nil
}

func (s *HistoryService) save(userID int64, history []models.ScanResult) error {
	raw, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("%w: failed to encode history: %v", apperr.ErrStorage, err)
	}
	if err := s.store.Set(s.key(userID), raw); err != nil {
		return fmt.Errorf("%w: failed to write history: %v", apperr.ErrStorage, err)
	}
	return nil
}
