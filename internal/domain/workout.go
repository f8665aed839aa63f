package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DayLayout formats a workout date at calendar-day granularity. The derived
// day string backs the unique (userId, day) index that enforces one workout
// per user per day at the store.
const DayLayout = "2006-01-02"

// Set is one set of a logged exercise: how many repetitions at what weight.
type Set struct {
	Repetitions int     `bson:"repetitions" json:"repetitions"`
	Weight      float64 `bson:"weight" json:"weight"`
}

// Effort scores the training load of a single set. Weighted sets score
// repetitions * weight; for zero (bodyweight) or negative weight the raw
// weight is passed through unchanged.
func (s Set) Effort() float64 {
	if s.Weight > 0 {
		return float64(s.Repetitions) * s.Weight
	}
	return s.Weight
}

// ExerciseLog records all sets of one exercise within a workout.
type ExerciseLog struct {
	Name        string `bson:"name" json:"name"`
	MuscleGroup string `bson:"muscleGroup" json:"muscleGroup"`
	Sets        []Set  `bson:"sets" json:"sets"`
}

// TotalEffort sums the effort of all sets. No sets means zero effort.
func (e ExerciseLog) TotalEffort() float64 {
	var total float64
	for _, s := range e.Sets {
		total += s.Effort()
	}
	return total
}

// Workout is one training session: all exercises a user logged on a single
// calendar day. At most one workout exists per user per day.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Date      time.Time          `bson:"date" json:"date"`
	Day       string             `bson:"day" json:"-"` // Date at day granularity, see DayLayout
	Exercises []ExerciseLog      `bson:"exercises" json:"exercises"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewWorkout builds a workout for the given date, deriving the day key.
func NewWorkout(userID string, date time.Time, exercises []ExerciseLog) *Workout {
	return &Workout{
		UserID:    userID,
		Date:      date,
		Day:       date.Format(DayLayout),
		Exercises: exercises,
	}
}

// ExerciseByName returns the log for the named exercise, or false if the
// workout does not contain it.
func (w *Workout) ExerciseByName(name string) (ExerciseLog, bool) {
	for _, e := range w.Exercises {
		if e.Name == name {
			return e, true
		}
	}
	return ExerciseLog{}, false
}
