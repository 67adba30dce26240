package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/advocatehq/advocate-practice-api/config"
	"github.com/advocatehq/advocate-practice-api/databases"
	"github.com/advocatehq/advocate-practice-api/models"
)

// AttorneyFirm exported for testing purposes
type AttorneyFirm struct {
	DB  databases.AttorneyFirmDatabase
	MDB databases.MatterDatabase
	BDB databases.BriefDatabase
	WDB databases.WorkRecordDatabase
}

func validateFirm(firm models.AttorneyFirm) string {
	if strings.TrimSpace(firm.FirmName) == "" {
		return "a firm name is required"
	}
	for _, contact := range firm.ContactPersons {
		if strings.TrimSpace(contact.Name) == "" {
			return "every contact person needs a name"
		}
	}
	return ""
}

// CreateAttorneyFirmHandler creates a new attorneys' firm
func (a AttorneyFirm) CreateAttorneyFirmHandler(w http.ResponseWriter, r *http.Request) {
	var firm models.AttorneyFirm
	if err := json.NewDecoder(r.Body).Decode(&firm); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if firm.UserID == "" {
		config.ErrorStatus("a userId is required", http.StatusBadRequest, w, nil)
		return
	}
	if msg := validateFirm(firm); msg != "" {
		config.ErrorStatus(msg, http.StatusBadRequest, w, nil)
		return
	}

	firm.ID = primitive.NewObjectID()
	firm.CreatedAt = time.Now()

	if _, err := a.DB.InsertOne(context.Background(), firm); err != nil {
		config.ErrorStatus("failed to create attorney firm", http.StatusInternalServerError, w, err)
		return
	}

	a.pushFirms(firm.UserID)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Attorney firm created successfully",
		"id":      firm.ID.Hex(),
	})
}

// AttorneyFirmsByUserIDHandler returns all firms belonging to the given userID
func (a AttorneyFirm) AttorneyFirmsByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	zap.S().Debugf("user_id: '%v'", userID)

	dbResp, err := a.DB.Find(context.TODO(), bson.M{"userId": userID})
	if err != nil {
		config.ErrorStatus("failed to get attorney firms", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.AttorneyFirm{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// AttorneyFirmByIDHandler returns a firm by ID
func (a AttorneyFirm) AttorneyFirmByIDHandler(w http.ResponseWriter, r *http.Request) {
	firmID := mux.Vars(r)["attorney_id"]

	fID, err := primitive.ObjectIDFromHex(firmID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := a.DB.FindOne(context.Background(), bson.M{"_id": fID})
	if err != nil {
		config.ErrorStatus("failed to get attorney firm by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateAttorneyFirmHandler updates a firm's details. Work records that
// snapshotted the firm keep their snapshots untouched.
func (a AttorneyFirm) UpdateAttorneyFirmHandler(w http.ResponseWriter, r *http.Request) {
	firmID := mux.Vars(r)["attorney_id"]

	fID, err := primitive.ObjectIDFromHex(firmID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	existing, err := a.DB.FindOne(context.Background(), bson.M{"_id": fID})
	if err != nil {
		config.ErrorStatus("failed to find attorney firm", http.StatusNotFound, w, err)
		return
	}

	var update models.AttorneyFirm
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if msg := validateFirm(update); msg != "" {
		config.ErrorStatus(msg, http.StatusBadRequest, w, nil)
		return
	}

	// Replacing the contact list migrates legacy single-contact documents,
	// so the old field is cleared on every update.
	err = a.DB.UpdateOne(context.Background(), bson.M{"_id": fID}, bson.M{
		"$set": bson.M{
			"firmName":       update.FirmName,
			"address":        update.Address,
			"generalPhone":   update.GeneralPhone,
			"generalEmail":   update.GeneralEmail,
			"contactPersons": update.ContactPersons,
		},
		"$unset": bson.M{"contactPerson": ""},
	})
	if err != nil {
		config.ErrorStatus("failed to update attorney firm", http.StatusInternalServerError, w, err)
		return
	}

	a.pushFirms(existing.UserID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Attorney firm updated successfully",
	})
}

// DeleteAttorneyFirmHandler deletes a firm by its ID. A firm still assigned
// to matters or referenced by briefs or work records cannot be deleted.
func (a AttorneyFirm) DeleteAttorneyFirmHandler(w http.ResponseWriter, r *http.Request) {
	firmID := mux.Vars(r)["attorney_id"]

	fID, err := primitive.ObjectIDFromHex(firmID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	existing, err := a.DB.FindOne(context.Background(), bson.M{"_id": fID})
	if err != nil {
		config.ErrorStatus("failed to find attorney firm", http.StatusNotFound, w, err)
		return
	}

	matterCount, err := a.MDB.CountDocuments(context.Background(), bson.M{"assignedAttorneysFirmId": firmID})
	if err != nil {
		config.ErrorStatus("failed to count matters for firm", http.StatusInternalServerError, w, err)
		return
	}
	if matterCount > 0 {
		config.ErrorStatus("attorney firm is still assigned to matters and cannot be deleted", http.StatusConflict, w, nil)
		return
	}

	briefCount, err := a.BDB.CountDocuments(context.Background(), bson.M{"attorneysFirmId": firmID})
	if err != nil {
		config.ErrorStatus("failed to count briefs for firm", http.StatusInternalServerError, w, err)
		return
	}
	if briefCount > 0 {
		config.ErrorStatus("attorney firm is still referenced by briefs and cannot be deleted", http.StatusConflict, w, nil)
		return
	}

	recordCount, err := a.WDB.CountDocuments(context.Background(), bson.M{"attorneysFirmId": firmID})
	if err != nil {
		config.ErrorStatus("failed to count work records for firm", http.StatusInternalServerError, w, err)
		return
	}
	if recordCount > 0 {
		config.ErrorStatus("attorney firm is still referenced by work records and cannot be deleted", http.StatusConflict, w, nil)
		return
	}

	err = a.DB.DeleteOne(context.Background(), bson.M{"_id": fID})
	if err != nil {
		config.ErrorStatus("failed to delete attorney firm", http.StatusInternalServerError, w, err)
		return
	}

	a.pushFirms(existing.UserID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Attorney firm deleted successfully",
	})
}

func (a AttorneyFirm) pushFirms(userID string) {
	pushCollection(userID, databases.AttorneyCollection, func(ctx context.Context) (interface{}, error) {
		return a.DB.Find(ctx, bson.M{"userId": userID})
	})
}
