package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"time"
)

// --- Error Definitions ---
var (
	ErrWorkoutAlreadyLogged = errors.New("workout already logged for today")
	ErrNoExercises          = errors.New("workout must include exercises")
)

// DefaultMaxReportEntries bounds the effort report window when no limit is
// configured.
const DefaultMaxReportEntries = 10

// EffortReportEntry is one row of the physical effort report: the total
// effort of one exercise on one day.
type EffortReportEntry struct {
	Date                string  `json:"date"` // Calendar date only (YYYY-MM-DD)
	Exercise            string  `json:"exercise"`
	TotalPhysicalEffort float64 `json:"totalPhysicalEffort"`
}

// --- Service Interface ---
type WorkoutService interface {
	LogWorkout(ctx context.Context, userID string, exercises []domain.ExerciseLog) (*domain.Workout, error)
	GetPhysicalEffortReport(ctx context.Context, userID string, exerciseName string) ([]EffortReportEntry, error)
}

// --- Service Implementation ---

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo      repository.WorkoutRepository
	maxReportEntries int64
	now              func() time.Time
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, maxReportEntries int64) WorkoutService {
	if maxReportEntries <= 0 {
		maxReportEntries = DefaultMaxReportEntries
	}
	return &workoutService{
		workoutRepo:      workoutRepo,
		maxReportEntries: maxReportEntries,
		now:              time.Now,
	}
}

// LogWorkout records a workout dated "now". At most one workout may exist
// per user per calendar day: a same-day workout found by the range query,
// or a duplicate-key rejection from the store's (userId, day) unique
// index, both surface as ErrWorkoutAlreadyLogged.
func (s *workoutService) LogWorkout(ctx context.Context, userID string, exercises []domain.ExerciseLog) (*domain.Workout, error) {
	if userID == "" {
		return nil, ErrValidationFailed
	}
	if len(exercises) == 0 {
		return nil, ErrNoExercises
	}

	workoutDate := s.now()

	_, err := s.workoutRepo.GetByUserAndDate(ctx, userID, workoutDate)
	if err == nil {
		return nil, ErrWorkoutAlreadyLogged
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	workout := domain.NewWorkout(userID, workoutDate, exercises)

	id, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		// The check above is not atomic with the insert; the unique index
		// is the real guard against a same-day race.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrWorkoutAlreadyLogged
		}
		return nil, err
	}
	workout.ID = id

	return workout, nil
}

// GetPhysicalEffortReport assembles the training-load history of one
// exercise: total effort per session over the most recent sessions, oldest
// of the fetched window first.
func (s *workoutService) GetPhysicalEffortReport(ctx context.Context, userID string, exerciseName string) ([]EffortReportEntry, error) {
	if exerciseName == "" {
		return nil, ErrValidationFailed
	}

	workouts, err := s.workoutRepo.GetEffortHistory(ctx, userID, exerciseName, s.maxReportEntries)
	if err != nil {
		return nil, err
	}

	report := make([]EffortReportEntry, 0, len(workouts))
	// Workouts arrive newest first; walk backwards so the report reads
	// chronologically.
	for i := len(workouts) - 1; i >= 0; i-- {
		w := workouts[i]
		log, ok := w.ExerciseByName(exerciseName)
		if !ok {
			continue
		}
		report = append(report, EffortReportEntry{
			Date:                w.Date.Format(domain.DayLayout),
			Exercise:            exerciseName,
			TotalPhysicalEffort: log.TotalEffort(),
		})
	}
	return report, nil
}
