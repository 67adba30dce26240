package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Settings holds the per-user singleton settings document in mongo. It is
// lazily created with defaults on first read.
type Settings struct {
	ID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID string             `json:"userId" bson:"userId"`

	HourlyRate              float64 `json:"hourlyRate" bson:"hourlyRate"`
	UnopposedMotionCourtFee float64 `json:"unopposedMotionCourtFee" bson:"unopposedMotionCourtFee"`
	OpposedMotionCourtFee   float64 `json:"opposedMotionCourtFee" bson:"opposedMotionCourtFee"`
	DayFee                  float64 `json:"dayFee" bson:"dayFee"`

	DateFormat  string `json:"dateFormat" bson:"dateFormat"`
	Theme       string `json:"theme" bson:"theme"`
	ColorScheme string `json:"colorScheme" bson:"colorScheme"`
	FontFamily  string `json:"fontFamily" bson:"fontFamily"`

	// SampleDataLoaded flips to true once and never back.
	SampleDataLoaded bool      `json:"sampleDataLoaded" bson:"sampleDataLoaded"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
}

// DefaultSettings returns the settings document written on first read
func DefaultSettings(userID string) Settings {
	return Settings{
		UserID:                  userID,
		HourlyRate:              1500,
		UnopposedMotionCourtFee: 3000,
		OpposedMotionCourtFee:   5000,
		DayFee:                  8000,
		DateFormat:              "YYYY-MM-DD",
		Theme:                   "light",
		ColorScheme:             "indigo",
		FontFamily:              "Inter",
		SampleDataLoaded:        false,
		CreatedAt:               time.Now(),
	}
}
