package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/advocatehq/advocate-practice-api/api/handlers"
	"github.com/advocatehq/advocate-practice-api/databases"
	mocksdb "github.com/advocatehq/advocate-practice-api/databases/mocks"
	"github.com/advocatehq/advocate-practice-api/models"
)

func TestDashboard_DashboardHandlerBadFilterDate(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/dashboard/user/user-1?filterDate=01-09-2026", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"user_id": "user-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}

	d := handlers.Dashboard{
		MDB: databases.NewMatterDatabase(db),
		BDB: databases.NewBriefDatabase(db),
		ADB: databases.NewAttorneyFirmDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(d.DashboardHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}
}

func TestDashboard_DashboardHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/dashboard/user/user-1", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"user_id": "user-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	mID := primitive.NewObjectID()
	pastDue := time.Now().UTC().AddDate(0, 0, -3).Format("2006-01-02")

	db := &mocksdb.DatabaseHelper{}
	matterConn := &mocksdb.CollectionHelper{}
	briefConn := &mocksdb.CollectionHelper{}
	firmConn := &mocksdb.CollectionHelper{}
	matterCursor := &mocksdb.CursorHelper{}
	briefCursor := &mocksdb.CursorHelper{}
	firmCursor := &mocksdb.CursorHelper{}

	matterCursor.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Matter)
		*arg = []models.Matter{{ID: mID, UserID: "user-1", Name: "Doe v Roe"}}
	})
	briefCursor.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Brief)
		*arg = []models.Brief{{
			ID:       primitive.NewObjectID(),
			UserID:   "user-1",
			MatterID: mID.Hex(),
			Category: models.CategoryConsult,
			Date:     pastDue,
		}}
	})
	firmCursor.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.AttorneyFirm)
		*arg = nil
	})
	matterConn.On("Find", mock.Anything, mock.Anything).Return(matterCursor)
	briefConn.On("Find", mock.Anything, mock.Anything).Return(briefCursor)
	firmConn.On("Find", mock.Anything, mock.Anything).Return(firmCursor)
	db.On("Collection", "matters").Return(matterConn)
	db.On("Collection", "briefs").Return(briefConn)
	db.On("Collection", "attorneys").Return(firmConn)

	d := handlers.Dashboard{
		MDB: databases.NewMatterDatabase(db),
		BDB: databases.NewBriefDatabase(db),
		ADB: databases.NewAttorneyFirmDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(d.DashboardHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var resp struct {
		Matters        []practiceMatterEntry `json:"matters"`
		TodaysBriefs   []models.Brief        `json:"todaysBriefs"`
		PastDueBriefs  []models.Brief        `json:"pastDueBriefs"`
		UpcomingBriefs []models.Brief        `json:"upcomingBriefs"`
	}
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)

	assert.Len(t, resp.Matters, 1)
	assert.Equal(t, "Doe v Roe", resp.Matters[0].Name)
	assert.Len(t, resp.Matters[0].Briefs, 1)
	assert.Len(t, resp.PastDueBriefs, 1)
	assert.Empty(t, resp.TodaysBriefs)
	assert.Empty(t, resp.UpcomingBriefs)
}

// practiceMatterEntry mirrors the flattened matter-with-briefs shape of the
// dashboard payload.
type practiceMatterEntry struct {
	Name   string         `json:"name"`
	Briefs []models.Brief `json:"briefs"`
}

func TestDashboard_CalendarHandlerBadDate(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/calendar/user/user-1/09-2026", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"user_id": "user-1", "date": "09-2026"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}

	d := handlers.Dashboard{BDB: databases.NewBriefDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(d.CalendarHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}
}

func TestDashboard_CalendarHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/calendar/user/user-1/2026-09-01", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"user_id": "user-1", "date": "2026-09-01"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}
	cursorHelper := &mocksdb.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Brief)
		*arg = []models.Brief{{
			ID:          primitive.NewObjectID(),
			UserID:      "user-1",
			Category:    models.CategoryConsult,
			Date:        "2026-09-01",
			Description: "Consultation - settlement advice",
		}}
	})
	conn.On("Find", mock.Anything, mock.Anything).Return(cursorHelper)
	db.On("Collection", "briefs").Return(conn)

	d := handlers.Dashboard{BDB: databases.NewBriefDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(d.CalendarHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var resp struct {
		Date   string   `json:"date"`
		Briefs []string `json:"briefs"`
	}
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)

	assert.Equal(t, "2026-09-01", resp.Date)
	assert.Equal(t, []string{"Consultation"}, resp.Briefs)
}
