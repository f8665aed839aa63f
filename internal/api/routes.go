package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the HTTP surface to the use-case services. All /api
// routes require the X-User-Id header carrying the caller identity.
func SetupRoutes(
	router *gin.Engine,
	userService service.UserService,
	workoutService service.WorkoutService,
	photoService service.ProgressPhotoService,
) {
	userHandler := NewUserHandler(userService)
	workoutHandler := NewWorkoutHandler(workoutService)
	photoHandler := NewPhotoHandler(photoService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")
	api.Use(UserIDMiddleware())
	{
		users := api.Group("/users")
		{
			users.POST("/register", userHandler.RegisterUser)
			users.GET("/profile", userHandler.GetProfile)
			users.PUT("/profile", userHandler.UpdateProfile)
			users.POST("/measurements", userHandler.AddMeasurement)

			users.GET("/exercises", userHandler.GetExercises)
			users.POST("/exercises", userHandler.AddExercise)
			users.DELETE("/exercises/:name", userHandler.RemoveExercise)

			users.POST("/photos", photoHandler.RequestUpload)
			users.GET("/photos", photoHandler.ListPhotos)
			users.DELETE("/photos/:id", photoHandler.DeletePhoto)
		}

		workouts := api.Group("/workouts")
		{
			workouts.POST("", workoutHandler.LogWorkout)
			workouts.GET("/report/:exerciseName", workoutHandler.GetEffortReport)
		}
	}
}
