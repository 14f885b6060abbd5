package services

import (
	"context"
	"testing"

	"logwell-backend/models"
	"logwell-backend/storage"
	"logwell-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func f64Ptr(f float64) *float64 { return &f }

func newProfileStore(t *testing.T) (*ProfileStore, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	ps, err := NewProfileStore(context.Background(), mem)
	require.NoError(t, err)
	return ps, mem
}

func fullBiometrics() ProfileInput {
	return ProfileInput{
		Name:          strPtr("Sam"),
		Age:           intPtr(30),
		HeightCm:      f64Ptr(175),
		WeightKg:      f64Ptr(70),
		Gender:        strPtr(models.GenderMale),
		ActivityLevel: strPtr(models.ActivityModeratelyActive),
		FitnessGoal:   strPtr(models.GoalMaintenance),
		MacroType:     strPtr(models.MacroBalanced),
	}
}

func TestCreateUserProfile_DefaultGoalsWithoutBiometrics(t *testing.T) {
	ps, _ := newProfileStore(t)

	p, err := ps.CreateUserProfile(context.Background(), ProfileInput{Name: strPtr("Sam")})
	require.NoError(t, err)

	assert.Equal(t, utils.DefaultGoals, p.Goals, "goals must never be left unset")
	assert.Equal(t, models.GoalsSourceDefault, p.GoalsSource)
	assert.False(t, p.UpdatedAt.IsZero())
}

func TestCreateUserProfile_CalculatedGoals(t *testing.T) {
	ps, _ := newProfileStore(t)

	p, err := ps.CreateUserProfile(context.Background(), fullBiometrics())
	require.NoError(t, err)

	assert.Equal(t, models.GoalsSourceCalculated, p.GoalsSource)
	assert.InDelta(t, 2555.5625, p.Goals.Calories, 1e-9) // 1648.75 BMR * 1.55
}

func TestCreateUserProfile_Twice(t *testing.T) {
	ps, _ := newProfileStore(t)
	ctx := context.Background()

	_, err := ps.CreateUserProfile(ctx, ProfileInput{})
	require.NoError(t, err)
	_, err = ps.CreateUserProfile(ctx, ProfileInput{})
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestUpdateUserProfile_MissingIsHardError(t *testing.T) {
	ps, _ := newProfileStore(t)

	_, err := ps.UpdateUserProfile(context.Background(), ProfileInput{Name: strPtr("Sam")})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateUserProfile_MergePatchRederivesGoals(t *testing.T) {
	ps, _ := newProfileStore(t)
	ctx := context.Background()

	created, err := ps.CreateUserProfile(ctx, ProfileInput{Name: strPtr("Sam")})
	require.NoError(t, err)
	require.Equal(t, models.GoalsSourceDefault, created.GoalsSource)

	// complete the biometrics; untouched fields stay
	updated, err := ps.UpdateUserProfile(ctx, ProfileInput{
		Age:           intPtr(30),
		HeightCm:      f64Ptr(175),
		WeightKg:      f64Ptr(70),
		Gender:        strPtr(models.GenderMale),
		ActivityLevel: strPtr(models.ActivityModeratelyActive),
		FitnessGoal:   strPtr(models.GoalWeightLoss),
	})
	require.NoError(t, err)

	assert.Equal(t, "Sam", updated.Name)
	assert.Equal(t, models.GoalsSourceCalculated, updated.GoalsSource)
	assert.InDelta(t, 2055.5625, updated.Goals.Calories, 1e-9) // TDEE - 500
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestProfilePersistsAcrossReload(t *testing.T) {
	ps, mem := newProfileStore(t)
	ctx := context.Background()

	want, err := ps.CreateUserProfile(ctx, fullBiometrics())
	require.NoError(t, err)

	ps2, err := NewProfileStore(ctx, mem)
	require.NoError(t, err)
	got, ok := ps2.UserProfile()
	require.True(t, ok)
	assert.Equal(t, want.Goals, got.Goals)
	assert.Equal(t, want.Name, got.Name)
}

func TestProfileReload_DropsStateAfterStorageWipe(t *testing.T) {
	ps, mem := newProfileStore(t)
	ctx := context.Background()

	_, err := ps.CreateUserProfile(ctx, fullBiometrics())
	require.NoError(t, err)

	require.NoError(t, mem.Remove(ctx, storage.KeyProfile))
	require.NoError(t, ps.Reload(ctx))

	_, ok := ps.UserProfile()
	assert.False(t, ok, "profile should be gone after the document is wiped")

	// creating again must not trip the already-exists guard
	_, err = ps.CreateUserProfile(ctx, fullBiometrics())
	require.NoError(t, err)
}
