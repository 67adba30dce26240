package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/advocatehq/advocate-practice-api/config"
	"github.com/advocatehq/advocate-practice-api/databases"
	"github.com/advocatehq/advocate-practice-api/models"
	"github.com/advocatehq/advocate-practice-api/practice"
)

// WorkRecord exported for testing purposes
type WorkRecord struct {
	DB  databases.WorkRecordDatabase
	SDB databases.SettingsDatabase
}

// WorkRecordsByUserIDHandler returns all work records belonging to the given
// userID, most recently completed first
func (wr WorkRecord) WorkRecordsByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	zap.S().Debugf("user_id: '%v'", userID)

	sort := bson.D{{Key: "completedAt", Value: -1}}
	dbResp, err := wr.DB.Find(context.TODO(), bson.M{"userId": userID}, &options.FindOptions{Sort: sort})
	if err != nil {
		config.ErrorStatus("failed to get work records", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.WorkRecord{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteWorkRecordHandler deletes a work record by its ID. The brief it came
// from stays deleted; removing a record is purely a billing correction.
func (wr WorkRecord) DeleteWorkRecordHandler(w http.ResponseWriter, r *http.Request) {
	recordID := mux.Vars(r)["work_record_id"]

	rID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	existing, err := wr.DB.FindOne(context.Background(), bson.M{"_id": rID})
	if err != nil {
		config.ErrorStatus("failed to find work record", http.StatusNotFound, w, err)
		return
	}

	err = wr.DB.DeleteOne(context.Background(), bson.M{"_id": rID})
	if err != nil {
		config.ErrorStatus("failed to delete work record", http.StatusInternalServerError, w, err)
		return
	}

	wr.pushWorkRecords(existing.UserID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Work record deleted successfully",
	})
}

// AssignInvoiceNumberHandler stamps an invoice number onto a work record.
// The invoice number is the only mutable field of a record.
func (wr WorkRecord) AssignInvoiceNumberHandler(w http.ResponseWriter, r *http.Request) {
	recordID := mux.Vars(r)["work_record_id"]

	rID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var body struct {
		InvoiceNumber string `json:"invoiceNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if strings.TrimSpace(body.InvoiceNumber) == "" {
		config.ErrorStatus("an invoice number is required", http.StatusBadRequest, w, nil)
		return
	}

	existing, err := wr.DB.FindOne(context.Background(), bson.M{"_id": rID})
	if err != nil {
		config.ErrorStatus("failed to find work record", http.StatusNotFound, w, err)
		return
	}

	err = wr.DB.UpdateOne(context.Background(), bson.M{"_id": rID}, bson.M{"$set": bson.M{
		"invoiceNumber": strings.TrimSpace(body.InvoiceNumber),
	}})
	if err != nil {
		config.ErrorStatus("failed to assign invoice number", http.StatusInternalServerError, w, err)
		return
	}

	wr.pushWorkRecords(existing.UserID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Invoice number assigned successfully",
	})
}

// ExportWorkRecordsHandler streams the user's work records as a CSV download,
// dates rendered in the user's display format
func (wr WorkRecord) ExportWorkRecordsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	settings, err := loadOrCreateSettings(context.Background(), wr.SDB, userID)
	if err != nil {
		config.ErrorStatus("failed to load settings", http.StatusInternalServerError, w, err)
		return
	}

	sort := bson.D{{Key: "completedAt", Value: -1}}
	records, err := wr.DB.Find(context.Background(), bson.M{"userId": userID}, &options.FindOptions{Sort: sort})
	if err != nil {
		config.ErrorStatus("failed to get work records", http.StatusInternalServerError, w, err)
		return
	}

	csvBytes, err := practice.WorkRecordsCSV(records, settings.DateFormat)
	if err != nil {
		config.ErrorStatus("failed to render work records csv", http.StatusInternalServerError, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, practice.ExportFilename(time.Now())))
	w.WriteHeader(http.StatusOK)
	w.Write(csvBytes)
}

func (wr WorkRecord) pushWorkRecords(userID string) {
	pushCollection(userID, databases.WorkRecordCollection, func(ctx context.Context) (interface{}, error) {
		return wr.DB.Find(ctx, bson.M{"userId": userID})
	})
}
