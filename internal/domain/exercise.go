// internal/domain/exercise.go
package domain

// Exercise is a single entry in a user's exercise catalog. The name is the
// unique key within the catalog.
type Exercise struct {
	Name        string `bson:"name" json:"name"`
	MuscleGroup string `bson:"muscleGroup" json:"muscleGroup"` // e.g., "Chest", "Legs", "Back"
	IsWeighted  bool   `bson:"isWeighted" json:"isWeighted"`   // false for bodyweight exercises
}

// ExerciseList is the per-user customizable exercise catalog. Its document
// ID equals the owning user's ID.
type ExerciseList struct {
	UserID    string     `bson:"_id" json:"userId"`
	Exercises []Exercise `bson:"exercises" json:"exercises"`
}

// DefaultExercises seeds every new user's catalog.
func DefaultExercises() []Exercise {
	return []Exercise{
		{Name: "Barbell Bench Press", MuscleGroup: "Chest", IsWeighted: true},
		{Name: "Lateral Raise (Dumbbells)", MuscleGroup: "Shoulders", IsWeighted: true},
		{Name: "Bicep Curl (Barbell)", MuscleGroup: "Biceps", IsWeighted: true},
		{Name: "Squat (Barbell)", MuscleGroup: "Legs", IsWeighted: true},
		{Name: "Push-ups", MuscleGroup: "Chest", IsWeighted: false},
	}
}
