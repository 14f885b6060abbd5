package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"logwell-backend/models"
	"logwell-backend/storage"
	"logwell-backend/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrEntryNotFound = errors.New("entry not found in the selected day's log")

// LogStore owns one DailyLog per calendar date plus the selected-date cursor
// the UI reads. All logs live in a single JSON array document; every mutation
// recomputes the day's cached total synchronously, rewrites the whole
// document, and only then commits to memory — a failed write leaves the cached
// state exactly as it was so the caller can retry.
//
// Mutations serialize on the store mutex. There is deliberately no
// optimistic-concurrency check at the persistence layer: the last completed
// write wins.
type LogStore struct {
	mu           sync.Mutex
	store        storage.Store
	foods        *FoodStore
	logs         []models.DailyLog
	selectedDate string
}

func NewLogStore(ctx context.Context, store storage.Store, foods *FoodStore) (*LogStore, error) {
	s := &LogStore{
		store:        store,
		foods:        foods,
		selectedDate: time.Now().Format(models.DateFormat),
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LogStore) load(ctx context.Context) error {
	raw, found, err := s.store.Get(ctx, storage.KeyDailyLogs)
	if err != nil {
		return fmt.Errorf("load daily logs: %w", err)
	}
	if !found {
		s.logs = []models.DailyLog{}
		return nil
	}
	var logs []models.DailyLog
	if err := json.Unmarshal([]byte(raw), &logs); err != nil {
		return fmt.Errorf("decode daily logs document: %w", err)
	}
	s.logs = logs
	return nil
}

// Reload re-reads the logs document, dropping cached state. The selected date
// is left where it was.
func (s *LogStore) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *LogStore) persist(ctx context.Context, logs []models.DailyLog) error {
	raw, err := json.Marshal(logs)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, storage.KeyDailyLogs, string(raw))
}

// SelectedDate returns the date key the store currently points at.
func (s *LogStore) SelectedDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedDate
}

// SetSelectedDate moves the cursor and reloads the logs document from storage.
// Any in-memory state that was never persisted is discarded; there is no
// dirty-state tracking across navigation.
func (s *LogStore) SetSelectedDate(ctx context.Context, date string) error {
	if _, err := time.Parse(models.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	s.selectedDate = date
	return nil
}

// GoToPreviousDay moves the cursor back one calendar day.
func (s *LogStore) GoToPreviousDay(ctx context.Context) (string, error) {
	return s.shiftDay(ctx, -1)
}

// GoToNextDay moves the cursor forward one calendar day.
func (s *LogStore) GoToNextDay(ctx context.Context) (string, error) {
	return s.shiftDay(ctx, 1)
}

func (s *LogStore) shiftDay(ctx context.Context, days int) (string, error) {
	s.mu.Lock()
	cur := s.selectedDate
	s.mu.Unlock()
	t, err := time.Parse(models.DateFormat, cur)
	if err != nil {
		return "", err
	}
	next := t.AddDate(0, 0, days).Format(models.DateFormat)
	if err := s.SetSelectedDate(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// CurrentDayLog returns a copy of the selected date's log. Dates that were
// never written get an empty log value; nothing is created by reading.
func (s *LogStore) CurrentDayLog() models.DailyLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.logs {
		if s.logs[i].Date == s.selectedDate {
			return cloneLog(s.logs[i])
		}
	}
	return models.DailyLog{Date: s.selectedDate, Entries: []models.FoodEntry{}}
}

// AllLogs returns a copy of every stored day, for history/chart reads.
func (s *LogStore) AllLogs() []models.DailyLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.DailyLog, len(s.logs))
	for i := range s.logs {
		out[i] = cloneLog(s.logs[i])
	}
	return out
}

// AddEntry appends an entry to the selected date's log, creating the log on
// first use, recomputes the total, and persists.
func (s *LogStore) AddEntry(ctx context.Context, entry models.FoodEntry) (models.FoodEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = time.Now()
	}
	if !models.ValidMealType(entry.MealType) {
		return models.FoodEntry{}, fmt.Errorf("invalid meal type %q", entry.MealType)
	}
	err := s.mutate(ctx, true, func(day *models.DailyLog) error {
		day.Entries = append(day.Entries, entry)
		return nil
	})
	if err != nil {
		return models.FoodEntry{}, err
	}
	return entry, nil
}

// UpdateEntry merges a patch into an entry of the selected date's log. Only
// the selected date is searched; an id that lives on another date is a
// not-found.
func (s *LogStore) UpdateEntry(ctx context.Context, id string, patch models.FoodEntryPatch) (models.FoodEntry, error) {
	var updated models.FoodEntry
	err := s.mutate(ctx, false, func(day *models.DailyLog) error {
		for i := range day.Entries {
			if day.Entries[i].ID != id {
				continue
			}
			if patch.Quantity != nil {
				day.Entries[i].Quantity = *patch.Quantity
			}
			if patch.MealType != nil {
				if !models.ValidMealType(*patch.MealType) {
					return fmt.Errorf("invalid meal type %q", *patch.MealType)
				}
				day.Entries[i].MealType = *patch.MealType
			}
			if patch.Notes != nil {
				day.Entries[i].Notes = *patch.Notes
			}
			updated = day.Entries[i]
			return nil
		}
		return ErrEntryNotFound
	})
	if err != nil {
		return models.FoodEntry{}, err
	}
	return updated, nil
}

// DeleteEntry removes an entry from the selected date's log. The log itself is
// never removed: emptying it leaves entries=[] with a zeroed total and the
// day's notes intact.
func (s *LogStore) DeleteEntry(ctx context.Context, id string) error {
	return s.mutate(ctx, false, func(day *models.DailyLog) error {
		kept := make([]models.FoodEntry, 0, len(day.Entries))
		found := false
		for _, e := range day.Entries {
			if e.ID == id {
				found = true
				continue
			}
			kept = append(kept, e)
		}
		if !found {
			return ErrEntryNotFound
		}
		day.Entries = kept
		return nil
	})
}

// SetDayNotes attaches day-level notes to the selected date, creating the log
// if needed. Notes survive the log being emptied.
func (s *LogStore) SetDayNotes(ctx context.Context, notes string) error {
	return s.mutate(ctx, true, func(day *models.DailyLog) error {
		day.Notes = notes
		return nil
	})
}

// mutate runs fn against a copy of the selected date's log, recomputes the
// cached total from the live food catalog, and persists the whole document.
// The in-memory state is only replaced after the write succeeded. With create
// false, a date that has no log yet fails with ErrEntryNotFound.
func (s *LogStore) mutate(ctx context.Context, create bool, fn func(day *models.DailyLog) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs := make([]models.DailyLog, len(s.logs))
	for i := range s.logs {
		logs[i] = cloneLog(s.logs[i])
	}

	idx := -1
	for i := range logs {
		if logs[i].Date == s.selectedDate {
			idx = i
			break
		}
	}
	if idx < 0 {
		if !create {
			return ErrEntryNotFound
		}
		logs = append(logs, models.DailyLog{Date: s.selectedDate, Entries: []models.FoodEntry{}})
		idx = len(logs) - 1
	}

	if err := fn(&logs[idx]); err != nil {
		return err
	}
	logs[idx].TotalNutrition = utils.CalculateTotalNutrition(logs[idx].Entries, s.foods.resolve)

	if err := s.persist(ctx, logs); err != nil {
		logrus.WithFields(logrus.Fields{
			"date": s.selectedDate,
		}).WithError(err).Error("persisting daily logs failed, in-memory state unchanged")
		return err
	}
	s.logs = logs
	return nil
}

// EntriesChronological returns the selected day's entries ordered by LoggedAt.
// Ordering is a read-time concern; stored entry order is unspecified.
func (s *LogStore) EntriesChronological() []models.FoodEntry {
	day := s.CurrentDayLog()
	sort.Slice(day.Entries, func(i, j int) bool {
		return day.Entries[i].LoggedAt.Before(day.Entries[j].LoggedAt)
	})
	return day.Entries
}

// EntriesByHour buckets the selected day's entries by local hour of LoggedAt,
// for timeline display.
func (s *LogStore) EntriesByHour() map[int][]models.FoodEntry {
	buckets := make(map[int][]models.FoodEntry)
	for _, e := range s.EntriesChronological() {
		h := e.LoggedAt.Local().Hour()
		buckets[h] = append(buckets[h], e)
	}
	return buckets
}

func cloneLog(l models.DailyLog) models.DailyLog {
	out := l
	out.Entries = make([]models.FoodEntry, len(l.Entries))
	copy(out.Entries, l.Entries)
	return out
}
