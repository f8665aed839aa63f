package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes for the repository capabilities. They mirror the store
// semantics the mongo implementations provide: duplicate-key rejection,
// set-semantics catalog mutations, day-range workout lookup.

type fakeUserRepository struct {
	users     map[string]*domain.User
	createErr error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepository) Create(ctx context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.users[user.ID]; ok {
		return repository.ErrDuplicateKey
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateKey
		}
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepository) UpdateProfile(ctx context.Context, id string, update repository.ProfileUpdate) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.BirthDate != nil {
		user.BirthDate = *update.BirthDate
	}
	user.UpdatedAt = time.Now().UTC()
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepository) AddMeasurement(ctx context.Context, id string, measurement domain.Measurement) error {
	user, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.Measurements = append(user.Measurements, measurement)
	return nil
}

type fakeExerciseListRepository struct {
	lists     map[string]*domain.ExerciseList
	createErr error
}

func newFakeExerciseListRepository() *fakeExerciseListRepository {
	return &fakeExerciseListRepository{lists: make(map[string]*domain.ExerciseList)}
}

func (r *fakeExerciseListRepository) Create(ctx context.Context, list *domain.ExerciseList) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.lists[list.UserID]; ok {
		return repository.ErrDuplicateKey
	}
	stored := domain.ExerciseList{
		UserID:    list.UserID,
		Exercises: append([]domain.Exercise(nil), list.Exercises...),
	}
	r.lists[list.UserID] = &stored
	return nil
}

func (r *fakeExerciseListRepository) GetByUserID(ctx context.Context, userID string) (*domain.ExerciseList, error) {
	list, ok := r.lists[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := domain.ExerciseList{
		UserID:    list.UserID,
		Exercises: append([]domain.Exercise(nil), list.Exercises...),
	}
	return &copied, nil
}

func (r *fakeExerciseListRepository) AddExercise(ctx context.Context, userID string, exercise domain.Exercise) error {
	list, ok := r.lists[userID]
	if !ok {
		return repository.ErrNotFound
	}
	for _, e := range list.Exercises {
		if e.Name == exercise.Name {
			return nil // duplicate name is a silent no-op
		}
	}
	list.Exercises = append(list.Exercises, exercise)
	return nil
}

func (r *fakeExerciseListRepository) RemoveExercise(ctx context.Context, userID string, exerciseName string) error {
	list, ok := r.lists[userID]
	if !ok {
		return repository.ErrNotFound
	}
	kept := list.Exercises[:0]
	for _, e := range list.Exercises {
		if e.Name != exerciseName {
			kept = append(kept, e)
		}
	}
	list.Exercises = kept
	return nil
}

type fakeWorkoutRepository struct {
	workouts []domain.Workout
	// hideFromDateLookup makes GetByUserAndDate miss, simulating the
	// check-then-insert race the unique index has to catch.
	hideFromDateLookup bool
}

func newFakeWorkoutRepository() *fakeWorkoutRepository {
	return &fakeWorkoutRepository{}
}

func (r *fakeWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	for _, w := range r.workouts {
		if w.UserID == workout.UserID && w.Day == workout.Day {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
	}
	workout.ID = primitive.NewObjectID()
	workout.CreatedAt = time.Now().UTC()
	r.workouts = append(r.workouts, *workout)
	return workout.ID, nil
}

func (r *fakeWorkoutRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*domain.Workout, error) {
	if r.hideFromDateLookup {
		return nil, repository.ErrNotFound
	}
	day := date.Format(domain.DayLayout)
	for _, w := range r.workouts {
		if w.UserID == userID && w.Day == day {
			copied := w
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeWorkoutRepository) GetEffortHistory(ctx context.Context, userID string, exerciseName string, limit int64) ([]domain.Workout, error) {
	var matched []domain.Workout
	for _, w := range r.workouts {
		if w.UserID != userID {
			continue
		}
		if _, ok := w.ExerciseByName(exerciseName); ok {
			matched = append(matched, w)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	if int64(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

type fakeFileStorage struct {
	deleted []string
	signErr error
}

func (s *fakeFileStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	return "https://storage.example.com/upload/" + objectKey, nil
}

func (s *fakeFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	return "https://storage.example.com/download/" + objectKey, nil
}

func (s *fakeFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

type fakeProgressPhotoRepository struct {
	photos map[primitive.ObjectID]*domain.ProgressPhoto
}

func newFakeProgressPhotoRepository() *fakeProgressPhotoRepository {
	return &fakeProgressPhotoRepository{photos: make(map[primitive.ObjectID]*domain.ProgressPhoto)}
}

func (r *fakeProgressPhotoRepository) Create(ctx context.Context, photo *domain.ProgressPhoto) (primitive.ObjectID, error) {
	photo.ID = primitive.NewObjectID()
	photo.UploadedAt = time.Now().UTC()
	stored := *photo
	r.photos[photo.ID] = &stored
	return photo.ID, nil
}

func (r *fakeProgressPhotoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProgressPhoto, error) {
	photo, ok := r.photos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *photo
	return &copied, nil
}

func (r *fakeProgressPhotoRepository) GetByUserID(ctx context.Context, userID string) ([]domain.ProgressPhoto, error) {
	var result []domain.ProgressPhoto
	for _, p := range r.photos {
		if p.UserID == userID {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UploadedAt.After(result[j].UploadedAt)
	})
	return result, nil
}

func (r *fakeProgressPhotoRepository) Delete(ctx context.Context, id primitive.ObjectID, userID string) error {
	photo, ok := r.photos[id]
	if !ok || photo.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.photos, id)
	return nil
}
