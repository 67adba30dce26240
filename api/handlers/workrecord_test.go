package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/advocatehq/advocate-practice-api/api/handlers"
	"github.com/advocatehq/advocate-practice-api/databases"
	mocksdb "github.com/advocatehq/advocate-practice-api/databases/mocks"
	"github.com/advocatehq/advocate-practice-api/models"
)

func TestWorkRecord_WorkRecordsByUserIDHandlerEmptyResponse(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/workRecords/user/user-1", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"user_id": "user-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}
	cursorHelper := &mocksdb.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.WorkRecord)
		*arg = nil
	})
	conn.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursorHelper)
	db.On("Collection", "workRecords").Return(conn)

	wr := handlers.WorkRecord{DB: databases.NewWorkRecordDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(wr.WorkRecordsByUserIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	expected := "[]"
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestWorkRecord_AssignInvoiceNumberHandlerBlankNumber(t *testing.T) {
	rID := primitive.NewObjectID()
	body := strings.NewReader(`{"invoiceNumber": "   "}`)
	req, err := http.NewRequest("PUT", "/api/v1/workRecord/"+rID.Hex()+"/invoice", body)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"work_record_id": rID.Hex()})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}

	wr := handlers.WorkRecord{DB: databases.NewWorkRecordDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(wr.AssignInvoiceNumberHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "an invoice number is required", Error: ""}}
	eb, _ := json.Marshal(expected)
	if rr.Body.String() != string(eb) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestWorkRecord_AssignInvoiceNumberHandlerSuccess(t *testing.T) {
	rID := primitive.NewObjectID()
	body := strings.NewReader(`{"invoiceNumber": "INV-42"}`)
	req, err := http.NewRequest("PUT", "/api/v1/workRecord/"+rID.Hex()+"/invoice", body)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"work_record_id": rID.Hex()})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}
	singleResultHelper := &mocksdb.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.WorkRecord)
		(*arg).ID = rID
		(*arg).UserID = "user-1"
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	db.On("Collection", "workRecords").Return(conn)

	wr := handlers.WorkRecord{DB: databases.NewWorkRecordDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(wr.AssignInvoiceNumberHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var resp map[string]interface{}
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.Equal(t, "Invoice number assigned successfully", resp["message"])
}

func TestWorkRecord_DeleteWorkRecordHandlerNotFound(t *testing.T) {
	rID := primitive.NewObjectID()
	req, err := http.NewRequest("DELETE", "/api/v1/workRecord/"+rID.Hex(), nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"work_record_id": rID.Hex()})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}
	singleResultHelper := &mocksdb.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "workRecords").Return(conn)

	wr := handlers.WorkRecord{DB: databases.NewWorkRecordDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(wr.DeleteWorkRecordHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusNotFound)
	}
}

func TestWorkRecord_ExportWorkRecordsHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/workRecords/user/user-1/export", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"user_id": "user-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}
	settingsConn := &mocksdb.CollectionHelper{}
	recordConn := &mocksdb.CollectionHelper{}
	settingsResult := &mocksdb.SingleResultHelper{}
	cursorHelper := &mocksdb.CursorHelper{}

	settingsResult.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Settings)
		settings := models.DefaultSettings("user-1")
		settings.DateFormat = "DD/MM/YYYY"
		**arg = settings
	})
	settingsConn.On("FindOne", mock.Anything, mock.Anything).Return(settingsResult)

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.WorkRecord)
		*arg = []models.WorkRecord{{
			UserID:      "user-1",
			MatterName:  "Doe v Roe",
			FirmName:    "Smith Inc",
			Date:        "2026-09-01",
			Description: "Consultation",
			FeeDue:      3000,
			TimeSpent:   2,
			CompletedAt: time.Date(2026, 9, 1, 16, 30, 0, 0, time.UTC),
		}}
	})
	recordConn.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursorHelper)

	db.On("Collection", "settings").Return(settingsConn)
	db.On("Collection", "workRecords").Return(recordConn)

	wr := handlers.WorkRecord{
		DB:  databases.NewWorkRecordDatabase(db),
		SDB: databases.NewSettingsDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(wr.ExportWorkRecordsHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), `attachment; filename="work_records_`)

	bodyOut := rr.Body.String()
	assert.True(t, strings.HasPrefix(bodyOut, "Attorneys' Firm,Matter"))
	assert.Contains(t, bodyOut, "Doe v Roe")
	assert.Contains(t, bodyOut, "01/09/2026")
}
