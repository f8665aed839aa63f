package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository" // Import repository package
	"context"
	"errors"
	"time"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists = errors.New("user with this id already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrValidationFailed  = errors.New("validation failed")
)

// MeasurementInput carries a new measurement with every field named
// explicitly. The capture timestamp is assigned by the use case, never by
// the caller.
type MeasurementInput struct {
	Weight          float64
	Height          float64
	LeftArmGirth    float64
	RightArmGirth   float64
	LeftThighGirth  float64
	RightThighGirth float64
	Waist           float64
	Shoulders       float64
	Chest           float64
}

// ProfileUpdateInput carries the mutable profile fields; nil fields are
// left unchanged.
type ProfileUpdateInput struct {
	Email     *string
	BirthDate *time.Time
}

// --- Service Interface ---
type UserService interface {
	CreateUser(ctx context.Context, userID, email string, birthDate time.Time) (*domain.User, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (*domain.User, error)
	AddMeasurement(ctx context.Context, userID string, input MeasurementInput) (*domain.Measurement, error)
	GetExerciseList(ctx context.Context, userID string) ([]domain.Exercise, error)
	AddExercise(ctx context.Context, userID string, exercise domain.Exercise) ([]domain.Exercise, error)
	RemoveExercise(ctx context.Context, userID string, exerciseName string) ([]domain.Exercise, error)
}

// --- Service Implementation ---

// userService implements the UserService interface.
type userService struct {
	userRepo         repository.UserRepository
	exerciseListRepo repository.ExerciseListRepository
	now              func() time.Time
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository, exerciseListRepo repository.ExerciseListRepository) UserService {
	return &userService{
		userRepo:         userRepo,
		exerciseListRepo: exerciseListRepo,
		now:              time.Now,
	}
}

// CreateUser registers a new user and seeds their exercise catalog with the
// default entries.
func (s *userService) CreateUser(ctx context.Context, userID, email string, birthDate time.Time) (*domain.User, error) {
	if userID == "" || email == "" {
		return nil, ErrValidationFailed
	}

	// 1. Check if the user already exists.
	_, err := s.userRepo.GetByID(ctx, userID)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// 2. Create the user record.
	user := &domain.User{
		ID:        userID,
		Email:     email,
		BirthDate: birthDate,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Covers the race between the existence check and the insert.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	// 3. Seed the catalog. Not rolled back on failure: the user record
	// stays and the error surfaces to the caller (see DESIGN.md).
	list := &domain.ExerciseList{
		UserID:    userID,
		Exercises: domain.DefaultExercises(),
	}
	if err := s.exerciseListRepo.Create(ctx, list); err != nil && !errors.Is(err, repository.ErrDuplicateKey) {
		return nil, err
	}

	return user, nil
}

// GetProfile returns the user record, or ErrUserNotFound.
func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies a partial update to the mutable profile fields.
func (s *userService) UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (*domain.User, error) {
	user, err := s.userRepo.UpdateProfile(ctx, userID, repository.ProfileUpdate{
		Email:     input.Email,
		BirthDate: input.BirthDate,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// AddMeasurement stamps the capture time, appends the measurement to the
// user's history, and returns the stored measurement.
func (s *userService) AddMeasurement(ctx context.Context, userID string, input MeasurementInput) (*domain.Measurement, error) {
	measurement := domain.Measurement{
		Weight:          input.Weight,
		Height:          input.Height,
		LeftArmGirth:    input.LeftArmGirth,
		RightArmGirth:   input.RightArmGirth,
		LeftThighGirth:  input.LeftThighGirth,
		RightThighGirth: input.RightThighGirth,
		Waist:           input.Waist,
		Shoulders:       input.Shoulders,
		Chest:           input.Chest,
		RecordedAt:      s.now().UTC(),
	}

	if err := s.userRepo.AddMeasurement(ctx, userID, measurement); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &measurement, nil
}

// GetExerciseList returns the user's catalog, or an empty slice if no
// catalog document exists.
func (s *userService) GetExerciseList(ctx context.Context, userID string) ([]domain.Exercise, error) {
	list, err := s.exerciseListRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []domain.Exercise{}, nil
		}
		return nil, err
	}
	return list.Exercises, nil
}

// AddExercise adds an entry to the catalog with set semantics: a name
// already present leaves the catalog unchanged. Returns the updated list.
func (s *userService) AddExercise(ctx context.Context, userID string, exercise domain.Exercise) ([]domain.Exercise, error) {
	if exercise.Name == "" || exercise.MuscleGroup == "" {
		return nil, ErrValidationFailed
	}

	if err := s.exerciseListRepo.AddExercise(ctx, userID, exercise); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.GetExerciseList(ctx, userID)
}

// RemoveExercise removes all catalog entries with an exact name match and
// returns the updated list. A non-matching name is a no-op.
func (s *userService) RemoveExercise(ctx context.Context, userID string, exerciseName string) ([]domain.Exercise, error) {
	if err := s.exerciseListRepo.RemoveExercise(ctx, userID, exerciseName); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.GetExerciseList(ctx, userID)
}
