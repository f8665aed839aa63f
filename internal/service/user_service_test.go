package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService() (*userService, *fakeUserRepository, *fakeExerciseListRepository) {
	userRepo := newFakeUserRepository()
	listRepo := newFakeExerciseListRepository()
	svc := &userService{
		userRepo:         userRepo,
		exerciseListRepo: listRepo,
		now:              time.Now,
	}
	return svc, userRepo, listRepo
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and seeds default catalog", func(t *testing.T) {
		svc, _, listRepo := newTestUserService()

		birthDate := time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC)
		user, err := svc.CreateUser(ctx, "user-1", "athlete@example.com", birthDate)
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "athlete@example.com", user.Email)

		list, err := listRepo.GetByUserID(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, list.Exercises, 5)

		byName := make(map[string]domain.Exercise)
		for _, e := range list.Exercises {
			byName[e.Name] = e
		}
		assert.False(t, byName["Push-ups"].IsWeighted)
		assert.True(t, byName["Barbell Bench Press"].IsWeighted)
		assert.True(t, byName["Lateral Raise (Dumbbells)"].IsWeighted)
		assert.True(t, byName["Bicep Curl (Barbell)"].IsWeighted)
		assert.True(t, byName["Squat (Barbell)"].IsWeighted)
	})

	t.Run("rejects duplicate user id", func(t *testing.T) {
		svc, _, _ := newTestUserService()

		_, err := svc.CreateUser(ctx, "user-1", "first@example.com", time.Time{})
		require.NoError(t, err)

		_, err = svc.CreateUser(ctx, "user-1", "second@example.com", time.Time{})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("rejects empty user id or email", func(t *testing.T) {
		svc, _, _ := newTestUserService()

		_, err := svc.CreateUser(ctx, "", "a@example.com", time.Time{})
		assert.ErrorIs(t, err, ErrValidationFailed)

		_, err = svc.CreateUser(ctx, "user-1", "", time.Time{})
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("surfaces seed failure without rolling back the user", func(t *testing.T) {
		svc, userRepo, listRepo := newTestUserService()
		listRepo.createErr = errors.New("storage unavailable")

		_, err := svc.CreateUser(ctx, "user-1", "athlete@example.com", time.Time{})
		require.Error(t, err)

		// The user record stays; the catalog is missing.
		_, err = userRepo.GetByID(ctx, "user-1")
		assert.NoError(t, err)
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestUserService()

	_, err := svc.GetProfile(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.CreateUser(ctx, "user-1", "athlete@example.com", time.Time{})
	require.NoError(t, err)

	user, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "athlete@example.com", user.Email)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestUserService()

	_, err := svc.CreateUser(ctx, "user-1", "old@example.com", time.Time{})
	require.NoError(t, err)

	newEmail := "new@example.com"
	user, err := svc.UpdateProfile(ctx, "user-1", ProfileUpdateInput{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)

	// Partial update leaves untouched fields alone.
	birthDate := time.Date(1988, 2, 29, 0, 0, 0, 0, time.UTC)
	user, err = svc.UpdateProfile(ctx, "user-1", ProfileUpdateInput{BirthDate: &birthDate})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, birthDate, user.BirthDate)

	_, err = svc.UpdateProfile(ctx, "nobody", ProfileUpdateInput{Email: &newEmail})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddMeasurement(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _ := newTestUserService()

	captureTime := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return captureTime }

	_, err := svc.CreateUser(ctx, "user-1", "athlete@example.com", time.Time{})
	require.NoError(t, err)

	input := MeasurementInput{
		Weight:          82.5,
		Height:          181,
		LeftArmGirth:    38,
		RightArmGirth:   38.5,
		LeftThighGirth:  59,
		RightThighGirth: 59.5,
		Waist:           84,
		Shoulders:       120,
		Chest:           104,
	}
	measurement, err := svc.AddMeasurement(ctx, "user-1", input)
	require.NoError(t, err)

	// Every named field maps to its own slot and the timestamp is stamped
	// by the use case.
	assert.Equal(t, 82.5, measurement.Weight)
	assert.Equal(t, 181.0, measurement.Height)
	assert.Equal(t, 38.0, measurement.LeftArmGirth)
	assert.Equal(t, 38.5, measurement.RightArmGirth)
	assert.Equal(t, 59.0, measurement.LeftThighGirth)
	assert.Equal(t, 59.5, measurement.RightThighGirth)
	assert.Equal(t, 84.0, measurement.Waist)
	assert.Equal(t, 120.0, measurement.Shoulders)
	assert.Equal(t, 104.0, measurement.Chest)
	assert.Equal(t, captureTime, measurement.RecordedAt)

	user, err := userRepo.GetByID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, user.Measurements, 1)
	assert.Equal(t, *measurement, user.Measurements[0])

	_, err = svc.AddMeasurement(ctx, "nobody", input)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetExerciseList(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestUserService()

	// No catalog document: empty sequence, not an error.
	exercises, err := svc.GetExerciseList(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, exercises)

	_, err = svc.CreateUser(ctx, "user-1", "athlete@example.com", time.Time{})
	require.NoError(t, err)

	exercises, err = svc.GetExerciseList(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, exercises, 5)
}

func TestAddExercise(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestUserService()

	_, err := svc.CreateUser(ctx, "user-1", "athlete@example.com", time.Time{})
	require.NoError(t, err)

	t.Run("adds a new exercise", func(t *testing.T) {
		exercises, err := svc.AddExercise(ctx, "user-1", domain.Exercise{
			Name:        "Deadlift",
			MuscleGroup: "Back",
			IsWeighted:  true,
		})
		require.NoError(t, err)
		assert.Len(t, exercises, 6)
	})

	t.Run("duplicate name leaves catalog unchanged", func(t *testing.T) {
		exercises, err := svc.AddExercise(ctx, "user-1", domain.Exercise{
			Name:        "Deadlift",
			MuscleGroup: "Legs", // different group, same name
			IsWeighted:  true,
		})
		require.NoError(t, err)
		assert.Len(t, exercises, 6)

		for _, e := range exercises {
			if e.Name == "Deadlift" {
				assert.Equal(t, "Back", e.MuscleGroup)
			}
		}
	})

	t.Run("rejects missing name or muscle group", func(t *testing.T) {
		_, err := svc.AddExercise(ctx, "user-1", domain.Exercise{MuscleGroup: "Back"})
		assert.ErrorIs(t, err, ErrValidationFailed)

		_, err = svc.AddExercise(ctx, "user-1", domain.Exercise{Name: "Deadlift"})
		assert.ErrorIs(t, err, ErrValidationFailed)
	})
}

func TestRemoveExercise(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestUserService()

	_, err := svc.CreateUser(ctx, "user-1", "athlete@example.com", time.Time{})
	require.NoError(t, err)

	t.Run("non-matching name is a no-op", func(t *testing.T) {
		exercises, err := svc.RemoveExercise(ctx, "user-1", "Deadlift")
		require.NoError(t, err)
		assert.Len(t, exercises, 5)
	})

	t.Run("exact match removes the entry", func(t *testing.T) {
		exercises, err := svc.RemoveExercise(ctx, "user-1", "Push-ups")
		require.NoError(t, err)
		assert.Len(t, exercises, 4)
		for _, e := range exercises {
			assert.NotEqual(t, "Push-ups", e.Name)
		}
	})

	t.Run("name match is exact, not a substring", func(t *testing.T) {
		exercises, err := svc.RemoveExercise(ctx, "user-1", "Squat")
		require.NoError(t, err)
		assert.Len(t, exercises, 4) // "Squat (Barbell)" stays
	})
}
