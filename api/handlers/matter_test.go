package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/advocatehq/advocate-practice-api/api/handlers"
	"github.com/advocatehq/advocate-practice-api/databases"
	mocksdb "github.com/advocatehq/advocate-practice-api/databases/mocks"
	"github.com/advocatehq/advocate-practice-api/models"
)

func TestMatter_MatterByIDHandlerBadID(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/matter/1234", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"matter_id": "1234"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}

	m := handlers.Matter{DB: databases.NewMatterDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(m.MatterByIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "failed to get objectID from Hex", Error: "the provided hex string is not a valid ObjectID"}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestMatter_MattersByUserIDHandlerEmptyResponse(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/matters/user/user-1", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"user_id": "user-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}
	cursorHelper := &mocksdb.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Matter)
		*arg = nil
	})
	conn.On("Find", mock.Anything, mock.Anything).Return(cursorHelper)
	db.On("Collection", "matters").Return(conn)

	m := handlers.Matter{DB: databases.NewMatterDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(m.MattersByUserIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	expected := "[]"
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestMatter_MattersByUserIDHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/matters/user/user-1", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"user_id": "user-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	mID := primitive.NewObjectID()

	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}
	cursorHelper := &mocksdb.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Matter)
		*arg = []models.Matter{{ID: mID, UserID: "user-1", Name: "Doe v Roe"}}
	})
	conn.On("Find", mock.Anything, mock.Anything).Return(cursorHelper)
	db.On("Collection", "matters").Return(conn)

	m := handlers.Matter{DB: databases.NewMatterDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(m.MattersByUserIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var matters []models.Matter
	_ = json.Unmarshal(rr.Body.Bytes(), &matters)

	assert.Equal(t, "Doe v Roe", matters[0].Name)
}

func TestMatter_CreateMatterHandlerMissingName(t *testing.T) {
	body := strings.NewReader(`{"userId": "user-1"}`)
	req, err := http.NewRequest("POST", "/api/v1/matter", body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}

	m := handlers.Matter{DB: databases.NewMatterDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(m.CreateMatterHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}
}

func TestMatter_CreateMatterHandlerSuccess(t *testing.T) {
	body := strings.NewReader(`{"userId": "user-1", "name": "Doe v Roe"}`)
	req, err := http.NewRequest("POST", "/api/v1/matter", body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}

	conn.On("InsertOne", mock.Anything, mock.Anything).Return(&mocksdb.InsertOneResultHelper{}, nil)
	db.On("Collection", "matters").Return(conn)

	m := handlers.Matter{DB: databases.NewMatterDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(m.CreateMatterHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusCreated {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusCreated)
	}

	var resp map[string]interface{}
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.Equal(t, "Matter created successfully", resp["message"])
	assert.NotEmpty(t, resp["id"])
}

func TestMatter_DeleteMatterHandlerConflictWithBriefs(t *testing.T) {
	mID := primitive.NewObjectID()

	req, err := http.NewRequest("DELETE", "/api/v1/matter/"+mID.Hex(), nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"matter_id": mID.Hex()})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}
	matterConn := &mocksdb.CollectionHelper{}
	briefConn := &mocksdb.CollectionHelper{}
	singleResultHelper := &mocksdb.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Matter)
		(*arg).ID = mID
		(*arg).UserID = "user-1"
	})
	matterConn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	briefConn.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(2), nil)
	db.On("Collection", "matters").Return(matterConn)
	db.On("Collection", "briefs").Return(briefConn)

	m := handlers.Matter{
		DB:  databases.NewMatterDatabase(db),
		BDB: databases.NewBriefDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(m.DeleteMatterHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusConflict {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusConflict)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "matter still has briefs and cannot be deleted", Error: ""}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestMatter_DeleteMatterHandlerNotFound(t *testing.T) {
	mID := primitive.NewObjectID()

	req, err := http.NewRequest("DELETE", "/api/v1/matter/"+mID.Hex(), nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"matter_id": mID.Hex()})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}
	singleResultHelper := &mocksdb.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(errors.New("mongo: no documents in result"))
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "matters").Return(conn)

	m := handlers.Matter{DB: databases.NewMatterDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(m.DeleteMatterHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusNotFound)
	}
}
