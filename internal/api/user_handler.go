package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs for API (Data Transfer Objects) ---

// RegisterUserRequest defines the expected JSON for registering a user.
type RegisterUserRequest struct {
	Email     string     `json:"email" binding:"required,email"`
	BirthDate *time.Time `json:"birthDate" binding:"omitempty"`
}

// UpdateProfileRequest defines the expected JSON for a partial profile update.
type UpdateProfileRequest struct {
	Email     *string    `json:"email" binding:"omitempty,email"`
	BirthDate *time.Time `json:"birthDate" binding:"omitempty"`
}

// AddMeasurementRequest defines the expected JSON for recording a measurement.
// Every measurement field is named explicitly; omitted fields stay zero.
type AddMeasurementRequest struct {
	Weight          float64 `json:"weight" binding:"omitempty"`
	Height          float64 `json:"height" binding:"omitempty"`
	LeftArmGirth    float64 `json:"leftArmGirth" binding:"omitempty"`
	RightArmGirth   float64 `json:"rightArmGirth" binding:"omitempty"`
	LeftThighGirth  float64 `json:"leftThighGirth" binding:"omitempty"`
	RightThighGirth float64 `json:"rightThighGirth" binding:"omitempty"`
	Waist           float64 `json:"waist" binding:"omitempty"`
	Shoulders       float64 `json:"shoulders" binding:"omitempty"`
	Chest           float64 `json:"chest" binding:"omitempty"`
}

// AddExerciseRequest defines the expected JSON for adding a catalog entry.
type AddExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	MuscleGroup string `json:"muscleGroup" binding:"required"`
	IsWeighted  *bool  `json:"isWeighted" binding:"omitempty"` // Defaults to true
}

// --- Handler Methods ---

// RegisterUser handles POST /api/users/register.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	var birthDate time.Time
	if req.BirthDate != nil {
		birthDate = *req.BirthDate
	}

	user, err := h.userService.CreateUser(c.Request.Context(), userID, req.Email, birthDate)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			abortWithError(c, http.StatusConflict, "User already exists.")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, "Email is required.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to register user.")
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetProfile handles GET /api/users/profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch profile.")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /api/users/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, service.ProfileUpdateInput{
		Email:     req.Email,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile.")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// AddMeasurement handles POST /api/users/measurements.
func (h *UserHandler) AddMeasurement(c *gin.Context) {
	var req AddMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	measurement, err := h.userService.AddMeasurement(c.Request.Context(), userID, service.MeasurementInput{
		Weight:          req.Weight,
		Height:          req.Height,
		LeftArmGirth:    req.LeftArmGirth,
		RightArmGirth:   req.RightArmGirth,
		LeftThighGirth:  req.LeftThighGirth,
		RightThighGirth: req.RightThighGirth,
		Waist:           req.Waist,
		Shoulders:       req.Shoulders,
		Chest:           req.Chest,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusBadRequest, "Invalid data or user not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to record measurement.")
		}
		return
	}

	c.JSON(http.StatusCreated, measurement)
}

// GetExercises handles GET /api/users/exercises.
func (h *UserHandler) GetExercises(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	exercises, err := h.userService.GetExerciseList(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch exercise list.")
		return
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}

	c.JSON(http.StatusOK, exercises)
}

// AddExercise handles POST /api/users/exercises.
func (h *UserHandler) AddExercise(c *gin.Context) {
	var req AddExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Name and muscleGroup are required.")
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	isWeighted := true
	if req.IsWeighted != nil {
		isWeighted = *req.IsWeighted
	}

	exercises, err := h.userService.AddExercise(c.Request.Context(), userID, domain.Exercise{
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
		IsWeighted:  isWeighted,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, "Name and muscleGroup are required.")
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, "User not found.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to add exercise.")
		}
		return
	}

	c.JSON(http.StatusCreated, exercises)
}

// RemoveExercise handles DELETE /api/users/exercises/:name.
func (h *UserHandler) RemoveExercise(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}
	exerciseName := c.Param("name")

	exercises, err := h.userService.RemoveExercise(c.Request.Context(), userID, exerciseName)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to remove exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, exercises)
}
