package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/advocatehq/advocate-practice-api/config"
	"github.com/advocatehq/advocate-practice-api/databases"
	"github.com/advocatehq/advocate-practice-api/models"
	"github.com/advocatehq/advocate-practice-api/practice"
)

// Brief exported for testing purposes
type Brief struct {
	DB  databases.BriefDatabase
	MDB databases.MatterDatabase
	ADB databases.AttorneyFirmDatabase
	WDB databases.WorkRecordDatabase
	SDB databases.SettingsDatabase
	PDB databases.PreferencesDatabase
}

// prepareBrief applies the category union rules and recomposes the display
// description. Every create and update path passes through here.
func prepareBrief(brief models.Brief) (models.Brief, error) {
	brief = practice.ResetDependentFields(brief)
	if err := practice.ValidateBrief(brief); err != nil {
		return models.Brief{}, err
	}
	brief.Description = practice.ComposeDescription(brief)
	return brief, nil
}

// CreateBriefHandler creates a new brief on an existing matter. The firm and
// selected contacts are copied from the matter at creation and never
// re-synced. A custom drafting type is remembered in the user's preferences.
func (b Brief) CreateBriefHandler(w http.ResponseWriter, r *http.Request) {
	var brief models.Brief
	if err := json.NewDecoder(r.Body).Decode(&brief); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if brief.MatterID == "" {
		config.ErrorStatus("a matterId is required", http.StatusBadRequest, w, nil)
		return
	}

	mID, err := primitive.ObjectIDFromHex(brief.MatterID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}
	matter, err := b.MDB.FindOne(context.Background(), bson.M{"_id": mID})
	if err != nil {
		config.ErrorStatus("failed to find matter for brief", http.StatusNotFound, w, err)
		return
	}

	brief.UserID = matter.UserID
	brief.FirmID = matter.AssignedFirmID
	brief.SelectedContactPersonNames = matter.AssignedContactPersonNames
	brief.Completed = false

	brief, err = prepareBrief(brief)
	if err != nil {
		config.ErrorStatus("invalid brief", http.StatusBadRequest, w, err)
		return
	}
	brief.ID = primitive.NewObjectID()
	brief.CreatedAt = time.Now()

	if _, err := b.DB.InsertOne(context.Background(), brief); err != nil {
		config.ErrorStatus("failed to create brief", http.StatusInternalServerError, w, err)
		return
	}

	b.rememberDraftType(brief)
	b.pushBriefs(brief.UserID)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Brief created successfully",
		"id":      brief.ID.Hex(),
	})
}

// BriefsByUserIDHandler returns all briefs belonging to the given userID
func (b Brief) BriefsByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	zap.S().Debugf("user_id: '%v'", userID)

	dbResp, err := b.DB.Find(context.TODO(), bson.M{"userId": userID})
	if err != nil {
		config.ErrorStatus("failed to get briefs", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.Brief{}
	}
	resp, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(resp)
}

// BriefByIDHandler returns a brief by ID
func (b Brief) BriefByIDHandler(w http.ResponseWriter, r *http.Request) {
	briefID := mux.Vars(r)["brief_id"]

	bID, err := primitive.ObjectIDFromHex(briefID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := b.DB.FindOne(context.Background(), bson.M{"_id": bID})
	if err != nil {
		config.ErrorStatus("failed to get brief by ID", http.StatusNotFound, w, err)
		return
	}

	resp, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(resp)
}

// UpdateBriefHandler updates a brief's details. The category rules re-apply
// on every update, so fields left over from a previous category are cleared.
func (b Brief) UpdateBriefHandler(w http.ResponseWriter, r *http.Request) {
	briefID := mux.Vars(r)["brief_id"]

	bID, err := primitive.ObjectIDFromHex(briefID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	existing, err := b.DB.FindOne(context.Background(), bson.M{"_id": bID})
	if err != nil {
		config.ErrorStatus("failed to find brief", http.StatusNotFound, w, err)
		return
	}

	var update models.Brief
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	// Identity and matter linkage are not editable through this endpoint.
	update.UserID = existing.UserID
	update.MatterID = existing.MatterID
	update.FirmID = existing.FirmID
	update.SelectedContactPersonNames = existing.SelectedContactPersonNames
	update.Completed = existing.Completed

	update, err = prepareBrief(update)
	if err != nil {
		config.ErrorStatus("invalid brief", http.StatusBadRequest, w, err)
		return
	}

	err = b.DB.UpdateOne(context.Background(), bson.M{"_id": bID}, bson.M{"$set": bson.M{
		"briefCategory":                  update.Category,
		"appearType":                     update.AppearType,
		"applicationSubtype":             update.ApplicationSubtype,
		"courtType":                      update.CourtType,
		"highCourtLocation":              update.HighCourtLocation,
		"magistratesCourtLocation":       update.MagistratesCourtLocation,
		"customMagistratesCourtLocation": update.CustomMagistratesCourtLocation,
		"draftType":                      update.DraftType,
		"customDraftType":                update.CustomDraftType,
		"description":                    update.Description,
		"originalDescription":            update.OriginalDescription,
		"date":                           update.Date,
	}})
	if err != nil {
		config.ErrorStatus("failed to update brief", http.StatusInternalServerError, w, err)
		return
	}

	b.rememberDraftType(update)
	b.pushBriefs(existing.UserID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Brief updated successfully",
	})
}

// DeleteBriefHandler deletes a brief by its ID without producing a work
// record
func (b Brief) DeleteBriefHandler(w http.ResponseWriter, r *http.Request) {
	briefID := mux.Vars(r)["brief_id"]

	bID, err := primitive.ObjectIDFromHex(briefID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	existing, err := b.DB.FindOne(context.Background(), bson.M{"_id": bID})
	if err != nil {
		config.ErrorStatus("failed to find brief", http.StatusNotFound, w, err)
		return
	}

	err = b.DB.DeleteOne(context.Background(), bson.M{"_id": bID})
	if err != nil {
		config.ErrorStatus("failed to delete brief", http.StatusInternalServerError, w, err)
		return
	}

	b.pushBriefs(existing.UserID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Brief deleted successfully",
	})
}

// briefCompleteRequest carries the reported hours for a completion
type briefCompleteRequest struct {
	TimeSpent float64 `json:"timeSpent"`
}

// CompleteBriefHandler converts a brief into a work record and removes the
// brief. The record is inserted first; if the brief delete then fails, the
// record is removed again so the two collections never disagree.
func (b Brief) CompleteBriefHandler(w http.ResponseWriter, r *http.Request) {
	briefID := mux.Vars(r)["brief_id"]

	bID, err := primitive.ObjectIDFromHex(briefID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var req briefCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := practice.ValidateTimeSpent(req.TimeSpent); err != nil {
		config.ErrorStatus("invalid time spent", http.StatusBadRequest, w, err)
		return
	}

	brief, err := b.DB.FindOne(context.Background(), bson.M{"_id": bID})
	if err != nil {
		config.ErrorStatus("failed to find brief", http.StatusNotFound, w, err)
		return
	}

	settings, err := loadOrCreateSettings(context.Background(), b.SDB, brief.UserID)
	if err != nil {
		config.ErrorStatus("failed to load settings", http.StatusInternalServerError, w, err)
		return
	}

	// The matter or firm may have been deleted since the brief was created;
	// the record then carries placeholders.
	var matter *models.Matter
	if mID, idErr := primitive.ObjectIDFromHex(brief.MatterID); idErr == nil {
		matter, err = b.MDB.FindOne(context.Background(), bson.M{"_id": mID})
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			config.ErrorStatus("failed to load matter for completion", http.StatusInternalServerError, w, err)
			return
		}
	}
	var firm *models.AttorneyFirm
	if fID, idErr := primitive.ObjectIDFromHex(brief.FirmID); idErr == nil {
		firm, err = b.ADB.FindOne(context.Background(), bson.M{"_id": fID})
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			config.ErrorStatus("failed to load firm for completion", http.StatusInternalServerError, w, err)
			return
		}
	}

	record, err := practice.BuildWorkRecord(*brief, matter, firm, settings, req.TimeSpent, time.Now())
	if err != nil {
		config.ErrorStatus("failed to build work record", http.StatusBadRequest, w, err)
		return
	}
	record.ID = primitive.NewObjectID()

	if _, err := b.WDB.InsertOne(context.Background(), record); err != nil {
		config.ErrorStatus("failed to create work record", http.StatusInternalServerError, w, err)
		return
	}

	if err := b.DB.DeleteOne(context.Background(), bson.M{"_id": bID}); err != nil {
		// Roll the record back rather than leave the brief both open and billed.
		if delErr := b.WDB.DeleteOne(context.Background(), bson.M{"_id": record.ID}); delErr != nil {
			zap.S().Errorw("failed to roll back work record after brief delete failure",
				"briefId", briefID, "workRecordId", record.ID.Hex(), "error", delErr)
		}
		config.ErrorStatus("failed to delete completed brief", http.StatusInternalServerError, w, err)
		return
	}

	b.pushBriefs(brief.UserID)
	pushCollection(brief.UserID, databases.WorkRecordCollection, func(ctx context.Context) (interface{}, error) {
		return b.WDB.Find(ctx, bson.M{"userId": brief.UserID})
	})

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":      "Brief completed successfully",
		"workRecordId": record.ID.Hex(),
		"feeDue":       record.FeeDue,
	})
}

// rememberDraftType appends a custom drafting type to the user's preference
// list so the next brief can pick it directly
func (b Brief) rememberDraftType(brief models.Brief) {
	if brief.Category != models.CategoryDraft || brief.DraftType != models.OtherOption || brief.CustomDraftType == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	options := practice.DefaultDraftingOptions()
	prefs, err := b.PDB.FindOne(ctx, bson.M{"userId": brief.UserID})
	if err == nil {
		options = prefs.DraftingOptions
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		zap.S().Warnw("failed to load drafting preferences", "userId", brief.UserID, "error", err)
		return
	}

	updated, changed := practice.AddDraftingOption(options, brief.CustomDraftType)
	if !changed {
		return
	}
	if err := upsertDraftingOptions(ctx, b.PDB, brief.UserID, updated); err != nil {
		zap.S().Warnw("failed to save drafting preferences", "userId", brief.UserID, "error", err)
		return
	}
	pushCollection(brief.UserID, databases.PreferencesCollection, func(ctx context.Context) (interface{}, error) {
		return b.PDB.FindOne(ctx, bson.M{"userId": brief.UserID})
	})
}

func (b Brief) pushBriefs(userID string) {
	pushCollection(userID, databases.BriefCollection, func(ctx context.Context) (interface{}, error) {
		return b.DB.Find(ctx, bson.M{"userId": userID})
	})
}
