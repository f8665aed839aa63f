package repository

import (
	"alcyxob/fitness-tracker/internal/domain" // Import our defined domain models
	"context"                                 // Standard for request-scoped deadlines, cancellation signals, etc.
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ProfileUpdate carries the mutable profile fields of a user. Nil fields
// are left untouched by UpdateProfile.
type ProfileUpdate struct {
	Email     *string
	BirthDate *time.Time
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
	AddMeasurement(ctx context.Context, id string, measurement domain.Measurement) error
}

// ExerciseListRepository defines the interface for interacting with a
// user's exercise catalog. Add and Remove are single atomic set mutations;
// concurrent edits for the same user serialize at the store.
type ExerciseListRepository interface {
	Create(ctx context.Context, list *domain.ExerciseList) error
	GetByUserID(ctx context.Context, userID string) (*domain.ExerciseList, error)
	// AddExercise adds the exercise unless an entry with the same name
	// already exists (set semantics; a duplicate is a silent no-op).
	AddExercise(ctx context.Context, userID string, exercise domain.Exercise) error
	// RemoveExercise removes all entries whose name matches exactly.
	RemoveExercise(ctx context.Context, userID string, exerciseName string) error
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	// Create inserts the workout. Returns ErrDuplicateKey when the store's
	// unique (userId, day) constraint rejects a second workout for the day.
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	// GetByUserAndDate finds the workout logged on the calendar day of the
	// given date, comparing inclusively from 00:00:00.000 to 23:59:59.999.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*domain.Workout, error)
	// GetEffortHistory returns up to limit workouts of the user containing
	// the named exercise, newest first.
	GetEffortHistory(ctx context.Context, userID string, exerciseName string, limit int64) ([]domain.Workout, error)
}

// ProgressPhotoRepository defines the interface for progress-photo metadata.
type ProgressPhotoRepository interface {
	Create(ctx context.Context, photo *domain.ProgressPhoto) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProgressPhoto, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.ProgressPhoto, error)
	Delete(ctx context.Context, id primitive.ObjectID, userID string) error // Ensure user owns the photo
}
