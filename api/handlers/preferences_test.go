package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/advocatehq/advocate-practice-api/api/handlers"
	"github.com/advocatehq/advocate-practice-api/databases"
	mocksdb "github.com/advocatehq/advocate-practice-api/databases/mocks"
	"github.com/advocatehq/advocate-practice-api/models"
)

func TestPreferences_DraftingOptionsByUserIDHandlerDefaults(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/preferences/user/user-1/drafting-options", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"user_id": "user-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}
	singleResultHelper := &mocksdb.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "preferences").Return(conn)

	p := handlers.Preferences{DB: databases.NewPreferencesDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(p.DraftingOptionsByUserIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var resp struct {
		UserID          string   `json:"userId"`
		DraftingOptions []string `json:"draftingOptions"`
	}
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)

	assert.Equal(t, "user-1", resp.UserID)
	assert.Contains(t, resp.DraftingOptions, "Opinion")
	assert.Equal(t, models.OtherOption, resp.DraftingOptions[len(resp.DraftingOptions)-1])
}

func TestPreferences_DraftingOptionsByUserIDHandlerSaved(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/preferences/user/user-1/drafting-options", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"user_id": "user-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}
	singleResultHelper := &mocksdb.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.DraftingPreferences)
		(*arg).UserID = "user-1"
		(*arg).DraftingOptions = []string{"Heads of Argument", "Opinion", models.OtherOption}
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "preferences").Return(conn)

	p := handlers.Preferences{DB: databases.NewPreferencesDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(p.DraftingOptionsByUserIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var resp struct {
		DraftingOptions []string `json:"draftingOptions"`
	}
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.Equal(t, []string{"Heads of Argument", "Opinion", models.OtherOption}, resp.DraftingOptions)
}

func TestPreferences_UpdateDraftingOptionsHandlerEmptyList(t *testing.T) {
	body := strings.NewReader(`{"draftingOptions": ["", "  "]}`)
	req, err := http.NewRequest("PUT", "/api/v1/preferences/user/user-1/drafting-options", body)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"user_id": "user-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}

	p := handlers.Preferences{DB: databases.NewPreferencesDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(p.UpdateDraftingOptionsHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "at least one drafting option is required", Error: ""}}
	eb, _ := json.Marshal(expected)
	if rr.Body.String() != string(eb) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestPreferences_UpdateDraftingOptionsHandlerSuccess(t *testing.T) {
	body := strings.NewReader(`{"draftingOptions": ["Plea", "Opinion", "Plea", "Other"]}`)
	req, err := http.NewRequest("PUT", "/api/v1/preferences/user/user-1/drafting-options", body)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"user_id": "user-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}

	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	db.On("Collection", "preferences").Return(conn)

	p := handlers.Preferences{DB: databases.NewPreferencesDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(p.UpdateDraftingOptionsHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var resp struct {
		Message         string   `json:"message"`
		DraftingOptions []string `json:"draftingOptions"`
	}
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.Equal(t, "Drafting options updated successfully", resp.Message)
	assert.Equal(t, []string{"Opinion", "Plea", models.OtherOption}, resp.DraftingOptions)
}
