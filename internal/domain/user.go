package domain

import (
	"time"
)

// User represents a tracked athlete's profile. The ID is supplied by the
// caller (an opaque, stable string) and doubles as the key of the user's
// exercise list document.
type User struct {
	ID           string        `bson:"_id" json:"id"`
	Email        string        `bson:"email" json:"email"` // Should be unique
	BirthDate    time.Time     `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	Measurements []Measurement `bson:"measurements" json:"measurements"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Measurement is a single body-measurement snapshot appended to a user's
// history. Values are optional; zero means "not taken". RecordedAt is
// assigned at construction, and measurements are never edited or removed.
type Measurement struct {
	Weight          float64   `bson:"weight,omitempty" json:"weight,omitempty"`
	Height          float64   `bson:"height,omitempty" json:"height,omitempty"`
	LeftArmGirth    float64   `bson:"leftArmGirth,omitempty" json:"leftArmGirth,omitempty"`
	RightArmGirth   float64   `bson:"rightArmGirth,omitempty" json:"rightArmGirth,omitempty"`
	LeftThighGirth  float64   `bson:"leftThighGirth,omitempty" json:"leftThighGirth,omitempty"`
	RightThighGirth float64   `bson:"rightThighGirth,omitempty" json:"rightThighGirth,omitempty"`
	Waist           float64   `bson:"waist,omitempty" json:"waist,omitempty"`
	Shoulders       float64   `bson:"shoulders,omitempty" json:"shoulders,omitempty"`
	Chest           float64   `bson:"chest,omitempty" json:"chest,omitempty"`
	RecordedAt      time.Time `bson:"recordedAt" json:"recordedAt"`
}
