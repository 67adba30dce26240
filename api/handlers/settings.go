package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/advocatehq/advocate-practice-api/config"
	"github.com/advocatehq/advocate-practice-api/databases"
	"github.com/advocatehq/advocate-practice-api/models"
)

// Settings exported for testing purposes
type Settings struct {
	DB databases.SettingsDatabase
}

// loadOrCreateSettings reads the user's settings singleton, writing the
// defaults on first read. Fee computation and exports go through here so a
// brand-new user always has rates.
func loadOrCreateSettings(ctx context.Context, db databases.SettingsDatabase, userID string) (models.Settings, error) {
	settings, err := db.FindOne(ctx, bson.M{"userId": userID})
	if err == nil {
		return *settings, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Settings{}, err
	}

	defaults := models.DefaultSettings(userID)
	if _, err := db.InsertOne(ctx, defaults); err != nil {
		return models.Settings{}, err
	}
	return defaults, nil
}

// SettingsByUserIDHandler returns the user's settings, creating the defaults
// on first read
func (s Settings) SettingsByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	settings, err := loadOrCreateSettings(context.Background(), s.DB, userID)
	if err != nil {
		config.ErrorStatus("failed to load settings", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(settings)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateSettingsHandler updates the user's settings. Rate changes only affect
// work records created afterwards.
func (s Settings) UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	existing, err := loadOrCreateSettings(context.Background(), s.DB, userID)
	if err != nil {
		config.ErrorStatus("failed to load settings", http.StatusInternalServerError, w, err)
		return
	}

	update := existing
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if update.HourlyRate < 0 || update.UnopposedMotionCourtFee < 0 || update.OpposedMotionCourtFee < 0 || update.DayFee < 0 {
		config.ErrorStatus("fees and rates cannot be negative", http.StatusBadRequest, w, nil)
		return
	}

	err = s.DB.UpdateOne(context.Background(), bson.M{"userId": userID}, bson.M{"$set": bson.M{
		"hourlyRate":              update.HourlyRate,
		"unopposedMotionCourtFee": update.UnopposedMotionCourtFee,
		"opposedMotionCourtFee":   update.OpposedMotionCourtFee,
		"dayFee":                  update.DayFee,
		"dateFormat":              update.DateFormat,
		"theme":                   update.Theme,
		"colorScheme":             update.ColorScheme,
		"fontFamily":              update.FontFamily,
		"sampleDataLoaded":        existing.SampleDataLoaded || update.SampleDataLoaded,
	}})
	if err != nil {
		config.ErrorStatus("failed to update settings", http.StatusInternalServerError, w, err)
		return
	}

	pushCollection(userID, databases.SettingsCollection, func(ctx context.Context) (interface{}, error) {
		return s.DB.FindOne(ctx, bson.M{"userId": userID})
	})

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Settings updated successfully",
	})
}
