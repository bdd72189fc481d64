package services

import (
	"time"

	"github.com/warriorfdkl/kalogram/models"
)

// StatsService aggregates the scan history into the day's totals for the
// progress display.
type StatsService struct {
	history *HistoryService
}

func NewStatsService(history *HistoryService) *StatsService {
	return &StatsService{history: history}
}

// TodayTotals sums the four tracked macros over entries whose timestamp
// falls on the same calendar day as now, in now's location. The day boundary
// is local midnight.
func (s *StatsService) TodayTotals(userID int64, now time.Time) models.DailyTotals {
	var totals models.DailyTotals
	year, month, day := now.Date()
	for _, entry := range s.history.List(userID) {
		ey, em, ed := entry.Timestamp.In(now.Location()).Date()
		if ey != year || em != month || ed != day {
			continue
		}
		totals.Calories += entry.Calories
		totals.Protein += entry.Protein
		totals.Fats += entry.Fats
		totals.Carbs += entry.Carbs
	}
	return totals
}
