package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/advocatehq/advocate-practice-api/config"
	"github.com/advocatehq/advocate-practice-api/databases"
	"github.com/advocatehq/advocate-practice-api/practice"
)

// Preferences exported for testing purposes
type Preferences struct {
	DB databases.PreferencesDatabase
}

func upsertDraftingOptions(ctx context.Context, db databases.PreferencesDatabase, userID string, draftingOptions []string) error {
	now := time.Now()
	upsert := true
	return db.UpdateOne(ctx, bson.M{"userId": userID}, bson.M{
		"$set":         bson.M{"draftingOptions": draftingOptions, "updatedAt": now},
		"$setOnInsert": bson.M{"userId": userID, "createdAt": now},
	}, &options.UpdateOptions{Upsert: &upsert})
}

// DraftingOptionsByUserIDHandler returns the user's drafting type list,
// falling back to the defaults before any customization has been saved
func (p Preferences) DraftingOptionsByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	draftingOptions := practice.DefaultDraftingOptions()
	prefs, err := p.DB.FindOne(context.Background(), bson.M{"userId": userID})
	if err == nil {
		draftingOptions = prefs.DraftingOptions
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		config.ErrorStatus("failed to load drafting preferences", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(map[string]interface{}{
		"userId":          userID,
		"draftingOptions": draftingOptions,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateDraftingOptionsHandler replaces the user's drafting type list. The
// list is normalized before saving so duplicates and blanks never persist.
func (p Preferences) UpdateDraftingOptionsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	var body struct {
		DraftingOptions []string `json:"draftingOptions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	normalized := practice.NormalizeDraftingOptions(body.DraftingOptions)
	if len(normalized) == 0 {
		config.ErrorStatus("at least one drafting option is required", http.StatusBadRequest, w, nil)
		return
	}

	if err := upsertDraftingOptions(context.Background(), p.DB, userID, normalized); err != nil {
		config.ErrorStatus("failed to update drafting preferences", http.StatusInternalServerError, w, err)
		return
	}

	pushCollection(userID, databases.PreferencesCollection, func(ctx context.Context) (interface{}, error) {
		return p.DB.FindOne(ctx, bson.M{"userId": userID})
	})

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":         "Drafting options updated successfully",
		"draftingOptions": normalized,
	})
}
