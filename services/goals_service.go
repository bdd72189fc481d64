package services

import (
	"encoding/json"
	"fmt"

	"github.com/warriorfdkl/kalogram/apperr"
	"github.com/warriorfdkl/kalogram/models"
	"github.com/warriorfdkl/kalogram/storage"
)

// Blob names under the per-user namespace, matching the mini app's storage
// layout. The auto-calculate flag lives under its own key, and manualMacros
// remembers the last hand-entered targets so toggling auto-calculate off
// restores them.
const (
	goalsKey        = "dailyGoals"
	autoCalcKey     = "autoCalculateMacros"
	manualMacrosKey = "manualMacros"
)

// ManualMacros are the last macro targets the user set by hand.
type ManualMacros struct {
	Protein int `json:"protein"`
	Fats    int `json:"fats"`
	Carbs   int `json:"carbs"`
}

// GoalsService persists each user's daily targets. The auto-calculate
// derivation is applied by the caller before Set; the store itself stays a
// plain persistence layer.
type GoalsService struct {
	store storage.Store
	bus   *EventBus
}

func NewGoalsService(store storage.Store, bus *EventBus) *GoalsService {
	return &GoalsService{store: store, bus: bus}
}

func (s *GoalsService) key(userID int64, name string) string {
	return fmt.Sprintf("%d:%s", userID, name)
}

// Get returns the user's goals, or the documented defaults when nothing has
// been saved. Storage failures degrade to the defaults.
func (s *GoalsService) Get(userID int64) models.Goals {
	goals := models.DefaultGoals()
	if raw, ok, err := s.store.Get(s.key(userID, goalsKey)); err == nil && ok {
		_ = json.Unmarshal(raw, &goals)
	}
	if raw, ok, err := s.store.Get(s.key(userID, autoCalcKey)); err == nil && ok {
		_ = json.Unmarshal(raw, &goals.AutoCalculate)
	}
	return goals
}

// Set clamps the record to non-negative values, persists the goals and the
// auto-calculate flag as separate blobs, and broadcasts goalsUpdated.
func (s *GoalsService) Set(userID int64, goals models.Goals) error {
	goals.Calories = max(goals.Calories, 0)
	goals.Protein = max(goals.Protein, 0)
	goals.Fats = max(goals.Fats, 0)
	goals.Carbs = max(goals.Carbs, 0)

	if err := s.write(s.key(userID, goalsKey), goals); err != nil {
		return err
	}
	if err := s.write(s.key(userID, autoCalcKey), goals.AutoCalculate); err != nil {
		return err
	}
	s.bus.Publish(Event{Kind: EventGoalsUpdated, UserID: userID})
	return nil
}

// ManualMacros returns the remembered hand-entered targets, defaulting to
// the documented macro defaults when the user never set any.
func (s *GoalsService) ManualMacros(userID int64) ManualMacros {
	defaults := models.DefaultGoals()
	manual := ManualMacros{Protein: defaults.Protein, Fats: defaults.Fats, Carbs: defaults.Carbs}
	if raw, ok, err := s.store.Get(s.key(userID, manualMacrosKey)); err == nil && ok {
		_ = json.Unmarshal(raw, &manual)
	}
	return manual
}

// RememberManualMacros records the latest hand-entered targets.
func (s *GoalsService) RememberManualMacros(userID int64, manual ManualMacros) error {
	return s.write(s.key(userID, manualMacrosKey), manual)
}

func (s *GoalsService) write(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: failed to encode goals: %v", apperr.ErrStorage, err)
	}
	if err := s.store.Set(key, raw); err != nil {
		return fmt.Errorf("%w: failed to write goals: %v", apperr.ErrStorage, err)
	}
	return nil
}
