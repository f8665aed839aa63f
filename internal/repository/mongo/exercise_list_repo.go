package mongo

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const exerciseListCollectionName = "exercise_lists"

// mongoExerciseListRepository implements repository.ExerciseListRepository.
type mongoExerciseListRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseListRepository creates a new exercise list repository backed by MongoDB.
func NewMongoExerciseListRepository(db *mongo.Database) repository.ExerciseListRepository {
	return &mongoExerciseListRepository{
		collection: db.Collection(exerciseListCollectionName),
	}
}

// Create inserts a user's catalog document (the seed at registration).
func (r *mongoExerciseListRepository) Create(ctx context.Context, list *domain.ExerciseList) error {
	if list.UserID == "" {
		return errors.New("exercise list requires a user id")
	}
	if list.Exercises == nil {
		list.Exercises = []domain.Exercise{}
	}

	_, err := r.collection.InsertOne(ctx, list)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateKey
		}
		return err
	}
	return nil
}

// GetByUserID retrieves the catalog for a user.
func (r *mongoExerciseListRepository) GetByUserID(ctx context.Context, userID string) (*domain.ExerciseList, error) {
	var list domain.ExerciseList
	filter := bson.M{"_id": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&list)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &list, nil
}

// AddExercise pushes the exercise in a single atomic update, guarded so an
// entry with the same name cannot be added twice. A duplicate name simply
// does not match the filter and the update is a no-op.
func (r *mongoExerciseListRepository) AddExercise(ctx context.Context, userID string, exercise domain.Exercise) error {
	filter := bson.M{
		"_id":            userID,
		"exercises.name": bson.M{"$ne": exercise.Name},
	}
	update := bson.M{"$push": bson.M{"exercises": exercise}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Either the list doesn't exist or the name is already present.
		// Only the former is an error.
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": userID})
		if err != nil {
			return err
		}
		if count == 0 {
			return repository.ErrNotFound
		}
	}
	return nil
}

// RemoveExercise pulls all entries with an exact name match.
func (r *mongoExerciseListRepository) RemoveExercise(ctx context.Context, userID string, exerciseName string) error {
	filter := bson.M{"_id": userID}
	update := bson.M{"$pull": bson.M{"exercises": bson.M{"name": exerciseName}}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	// ModifiedCount is 0 when no entry matched the name, which is fine.
	return nil
}
