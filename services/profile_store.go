package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"logwell-backend/models"
	"logwell-backend/storage"
	"logwell-backend/utils"
)

var (
	ErrProfileNotFound = errors.New("profile not found, create it first")
	ErrProfileExists   = errors.New("profile already exists")
)

// ProfileInput is a merge-patch: nil fields are left untouched.
type ProfileInput struct {
	Name           *string  `json:"name"`
	Age            *int     `json:"age"`
	HeightCm       *float64 `json:"height_cm"`
	WeightKg       *float64 `json:"weight_kg"`
	Gender         *string  `json:"gender"`
	ActivityLevel  *string  `json:"activity_level"`
	FitnessGoal    *string  `json:"fitness_goal"`
	WeightLossRate *float64 `json:"weight_loss_rate"`
	MacroType      *string  `json:"macro_type"`
}

// ProfileStore owns the single user profile. Goals are re-derived on every
// create/update — and only then, never on read — so a profile always carries a
// populated goal set, calculated when the biometrics allow it and the fixed
// defaults otherwise.
type ProfileStore struct {
	mu      sync.Mutex
	store   storage.Store
	profile *models.UserProfile
}

func NewProfileStore(ctx context.Context, store storage.Store) (*ProfileStore, error) {
	s := &ProfileStore{store: store}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ProfileStore) load(ctx context.Context) error {
	raw, found, err := s.store.Get(ctx, storage.KeyProfile)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if !found {
		s.profile = nil
		return nil
	}
	var p models.UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return fmt.Errorf("decode profile document: %w", err)
	}
	s.profile = &p
	return nil
}

// Reload re-reads the profile document, dropping cached state.
func (s *ProfileStore) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *ProfileStore) persist(ctx context.Context, p *models.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, storage.KeyProfile, string(raw))
}

// UserProfile returns a copy of the profile, or found=false before onboarding.
func (s *ProfileStore) UserProfile() (models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return models.UserProfile{}, false
	}
	return *s.profile, true
}

// CreateUserProfile creates the singleton profile from the given fields and
// derives its goals.
func (s *ProfileStore) CreateUserProfile(ctx context.Context, input ProfileInput) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile != nil {
		return models.UserProfile{}, ErrProfileExists
	}
	now := time.Now()
	p := models.UserProfile{CreatedAt: now}
	applyProfileInput(&p, input)
	p.Goals, p.GoalsSource = utils.GoalsForProfile(&p)
	p.UpdatedAt = now
	if err := s.persist(ctx, &p); err != nil {
		return models.UserProfile{}, err
	}
	s.profile = &p
	return p, nil
}

// UpdateUserProfile merge-patches the profile, re-derives goals, and stamps
// UpdatedAt. Updating before creation is a hard error.
func (s *ProfileStore) UpdateUserProfile(ctx context.Context, input ProfileInput) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return models.UserProfile{}, ErrProfileNotFound
	}
	p := *s.profile
	applyProfileInput(&p, input)
	p.Goals, p.GoalsSource = utils.GoalsForProfile(&p)
	p.UpdatedAt = time.Now()
	if err := s.persist(ctx, &p); err != nil {
		return models.UserProfile{}, err
	}
	s.profile = &p
	return p, nil
}

func applyProfileInput(p *models.UserProfile, in ProfileInput) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Age != nil {
		p.Age = in.Age
	}
	if in.HeightCm != nil {
		p.HeightCm = in.HeightCm
	}
	if in.WeightKg != nil {
		p.WeightKg = in.WeightKg
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.ActivityLevel != nil {
		p.ActivityLevel = *in.ActivityLevel
	}
	if in.FitnessGoal != nil {
		p.FitnessGoal = *in.FitnessGoal
	}
	if in.WeightLossRate != nil {
		p.WeightLossRate = in.WeightLossRate
	}
	if in.MacroType != nil {
		p.MacroType = *in.MacroType
	}
}
