package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/advocatehq/advocate-practice-api/config"
	"github.com/advocatehq/advocate-practice-api/databases"
	"github.com/advocatehq/advocate-practice-api/models"
	"github.com/advocatehq/advocate-practice-api/practice"
)

// Matter exported for testing purposes
type Matter struct {
	DB  databases.MatterDatabase
	BDB databases.BriefDatabase
	WDB databases.WorkRecordDatabase
}

// matterCreateRequest carries a new matter plus the briefs to open with it
type matterCreateRequest struct {
	models.Matter
	InitialBriefs []models.Brief `json:"initialBriefs"`
}

// CreateMatterHandler creates a new matter, optionally with initial briefs.
// Each initial brief inherits the matter's firm and selected contacts.
func (m Matter) CreateMatterHandler(w http.ResponseWriter, r *http.Request) {
	var req matterCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Name == "" || req.UserID == "" {
		config.ErrorStatus("a matter name and userId are required", http.StatusBadRequest, w, nil)
		return
	}

	matter := req.Matter
	matter.ID = primitive.NewObjectID()
	matter.CreatedAt = time.Now()

	briefs := make([]models.Brief, 0, len(req.InitialBriefs))
	for _, brief := range req.InitialBriefs {
		brief.UserID = matter.UserID
		brief.MatterID = matter.ID.Hex()
		brief.FirmID = matter.AssignedFirmID
		brief.SelectedContactPersonNames = matter.AssignedContactPersonNames
		brief = practice.ResetDependentFields(brief)
		if err := practice.ValidateBrief(brief); err != nil {
			config.ErrorStatus("invalid initial brief", http.StatusBadRequest, w, err)
			return
		}
		brief.ID = primitive.NewObjectID()
		brief.Description = practice.ComposeDescription(brief)
		brief.CreatedAt = matter.CreatedAt
		briefs = append(briefs, brief)
	}

	if _, err := m.DB.InsertOne(context.Background(), matter); err != nil {
		config.ErrorStatus("failed to create matter", http.StatusInternalServerError, w, err)
		return
	}
	for _, brief := range briefs {
		if _, err := m.BDB.InsertOne(context.Background(), brief); err != nil {
			config.ErrorStatus("failed to create initial brief", http.StatusInternalServerError, w, err)
			return
		}
	}

	m.pushMatters(matter.UserID)
	if len(briefs) > 0 {
		pushCollection(matter.UserID, databases.BriefCollection, func(ctx context.Context) (interface{}, error) {
			return m.BDB.Find(ctx, bson.M{"userId": matter.UserID})
		})
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Matter created successfully",
		"id":      matter.ID.Hex(),
	})
}

// MattersByUserIDHandler returns all matters belonging to the given userID
func (m Matter) MattersByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	zap.S().Debugf("user_id: '%v'", userID)

	dbResp, err := m.DB.Find(context.TODO(), bson.M{"userId": userID})
	if err != nil {
		config.ErrorStatus("failed to get matters", http.StatusNotFound, w, err)
		return
	}

	// Because the frontend requires that the data elements exist, if
	// len == 0 then we will just return an empty data object
	if len(dbResp) == 0 {
		dbResp = []models.Matter{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// MatterByIDHandler returns a matter by ID
func (m Matter) MatterByIDHandler(w http.ResponseWriter, r *http.Request) {
	matterID := mux.Vars(r)["matter_id"]

	mID, err := primitive.ObjectIDFromHex(matterID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := m.DB.FindOne(context.Background(), bson.M{"_id": mID})
	if err != nil {
		config.ErrorStatus("failed to get matter by ID", http.StatusNotFound, w, err)
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

// UpdateMatterHandler updates a matter's details. Briefs that copied the
// matter's firm or contacts keep their copies untouched.
func (m Matter) UpdateMatterHandler(w http.ResponseWriter, r *http.Request) {
	matterID := mux.Vars(r)["matter_id"]

	mID, err := primitive.ObjectIDFromHex(matterID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	existing, err := m.DB.FindOne(context.Background(), bson.M{"_id": mID})
	if err != nil {
		config.ErrorStatus("failed to find matter", http.StatusNotFound, w, err)
		return
	}

	var update models.Matter
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if update.Name == "" {
		config.ErrorStatus("a matter name is required", http.StatusBadRequest, w, nil)
		return
	}

	err = m.DB.UpdateOne(context.Background(), bson.M{"_id": mID}, bson.M{"$set": bson.M{
		"name":                       update.Name,
		"description":                update.Description,
		"attorneyReference":          update.AttorneyReference,
		"assignedAttorneysFirmId":    update.AssignedFirmID,
		"assignedContactPersonNames": update.AssignedContactPersonNames,
	}})
	if err != nil {
		config.ErrorStatus("failed to update matter", http.StatusInternalServerError, w, err)
		return
	}

	m.pushMatters(existing.UserID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Matter updated successfully",
	})
}

// DeleteMatterHandler deletes a matter by its ID. A matter still referenced
// by briefs or work records cannot be deleted.
func (m Matter) DeleteMatterHandler(w http.ResponseWriter, r *http.Request) {
	matterID := mux.Vars(r)["matter_id"]

	mID, err := primitive.ObjectIDFromHex(matterID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	existing, err := m.DB.FindOne(context.Background(), bson.M{"_id": mID})
	if err != nil {
		config.ErrorStatus("failed to find matter", http.StatusNotFound, w, err)
		return
	}

	briefCount, err := m.BDB.CountDocuments(context.Background(), bson.M{"matterId": matterID})
	if err != nil {
		config.ErrorStatus("failed to count briefs for matter", http.StatusInternalServerError, w, err)
		return
	}
	if briefCount > 0 {
		config.ErrorStatus("matter still has briefs and cannot be deleted", http.StatusConflict, w, nil)
		return
	}

	recordCount, err := m.WDB.CountDocuments(context.Background(), bson.M{"matterId": matterID})
	if err != nil {
		config.ErrorStatus("failed to count work records for matter", http.StatusInternalServerError, w, err)
		return
	}
	if recordCount > 0 {
		config.ErrorStatus("matter still has work records and cannot be deleted", http.StatusConflict, w, nil)
		return
	}

	// Matters are never assigned as firms, so this count is always zero.
	asFirmCount, err := m.DB.CountDocuments(context.Background(), bson.M{"assignedAttorneysFirmId": matterID})
	if err != nil {
		config.ErrorStatus("failed to count matters referencing matter", http.StatusInternalServerError, w, err)
		return
	}
	if asFirmCount > 0 {
		config.ErrorStatus("matter is still referenced and cannot be deleted", http.StatusConflict, w, nil)
		return
	}

	err = m.DB.DeleteOne(context.Background(), bson.M{"_id": mID})
	if err != nil {
		config.ErrorStatus("failed to delete matter", http.StatusInternalServerError, w, err)
		return
	}

	m.pushMatters(existing.UserID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Matter deleted successfully",
	})
}

func (m Matter) pushMatters(userID string) {
	pushCollection(userID, databases.MatterCollection, func(ctx context.Context) (interface{}, error) {
		return m.DB.Find(ctx, bson.M{"userId": userID})
	})
}
