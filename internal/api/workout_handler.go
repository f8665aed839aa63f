package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// SetRequest is one set within a logged exercise.
type SetRequest struct {
	Repetitions int     `json:"repetitions" binding:"required"`
	Weight      float64 `json:"weight"`
}

// ExerciseLogRequest is one exercise within a logged workout.
type ExerciseLogRequest struct {
	Name        string       `json:"name" binding:"required"`
	MuscleGroup string       `json:"muscleGroup" binding:"required"`
	Sets        []SetRequest `json:"sets" binding:"required"`
}

// LogWorkoutRequest defines the expected JSON for logging a workout.
type LogWorkoutRequest struct {
	Exercises []ExerciseLogRequest `json:"exercises" binding:"required,min=1,dive"`
}

func (r LogWorkoutRequest) toDomain() []domain.ExerciseLog {
	exercises := make([]domain.ExerciseLog, len(r.Exercises))
	for i, e := range r.Exercises {
		sets := make([]domain.Set, len(e.Sets))
		for j, s := range e.Sets {
			sets[j] = domain.Set{Repetitions: s.Repetitions, Weight: s.Weight}
		}
		exercises[i] = domain.ExerciseLog{
			Name:        e.Name,
			MuscleGroup: e.MuscleGroup,
			Sets:        sets,
		}
	}
	return exercises
}

// --- Handler Methods ---

// LogWorkout handles POST /api/workouts.
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Workout must include exercises.")
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	workout, err := h.workoutService.LogWorkout(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutAlreadyLogged):
			abortWithError(c, http.StatusConflict, "Workout already logged for today.")
		case errors.Is(err, service.ErrNoExercises), errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, "Workout must include exercises.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to log workout.")
		}
		return
	}

	c.JSON(http.StatusCreated, workout)
}

// GetEffortReport handles GET /api/workouts/report/:exerciseName.
func (h *WorkoutHandler) GetEffortReport(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	exerciseName := c.Param("exerciseName")
	if exerciseName == "" {
		abortWithError(c, http.StatusBadRequest, "Exercise name is required for the report.")
		return
	}

	report, err := h.workoutService.GetPhysicalEffortReport(c.Request.Context(), userID, exerciseName)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Exercise name is required for the report.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate report.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exercise": exerciseName,
		"data":     report,
	})
}
