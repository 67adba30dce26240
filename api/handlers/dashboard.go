package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/advocatehq/advocate-practice-api/config"
	"github.com/advocatehq/advocate-practice-api/databases"
	"github.com/advocatehq/advocate-practice-api/practice"
)

// Dashboard exported for testing purposes
type Dashboard struct {
	MDB databases.MatterDatabase
	BDB databases.BriefDatabase
	ADB databases.AttorneyFirmDatabase
}

// DashboardHandler returns the derived dashboard view: matters with their
// briefs in the requested order, plus today's, past-due and upcoming brief
// lists. Query params: filterDate (YYYY-MM-DD), sortBy (name|attorney|
// dueDate), sortDir (asc|desc).
func (d Dashboard) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	now := time.Now()

	sortBy := r.URL.Query().Get("sortBy")
	if sortBy == "" {
		sortBy = practice.SortByName
	}
	sortDir := r.URL.Query().Get("sortDir")
	if sortDir == "" {
		sortDir = practice.SortAscending
	}
	var filterDate *time.Time
	if raw := r.URL.Query().Get("filterDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			config.ErrorStatus("filterDate must be in YYYY-MM-DD form", http.StatusBadRequest, w, err)
			return
		}
		filterDate = &parsed
	}

	matters, err := d.MDB.Find(context.Background(), bson.M{"userId": userID})
	if err != nil {
		config.ErrorStatus("failed to get matters", http.StatusInternalServerError, w, err)
		return
	}
	briefs, err := d.BDB.Find(context.Background(), bson.M{"userId": userID})
	if err != nil {
		config.ErrorStatus("failed to get briefs", http.StatusInternalServerError, w, err)
		return
	}
	firms, err := d.ADB.Find(context.Background(), bson.M{"userId": userID})
	if err != nil {
		config.ErrorStatus("failed to get attorney firms", http.StatusInternalServerError, w, err)
		return
	}

	entries := practice.SortMatters(practice.AttachBriefs(matters, briefs), firms, sortBy, sortDir)

	b, err := json.Marshal(map[string]interface{}{
		"matters":        entries,
		"todaysBriefs":   practice.BriefsForToday(briefs, now),
		"pastDueBriefs":  practice.PastDueBriefs(briefs, now),
		"upcomingBriefs": practice.UpcomingBriefs(briefs, now, filterDate),
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CalendarHandler returns the brief summaries falling on a calendar day
func (d Dashboard) CalendarHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	rawDate := mux.Vars(r)["date"]

	day, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		config.ErrorStatus("date must be in YYYY-MM-DD form", http.StatusBadRequest, w, err)
		return
	}

	briefs, err := d.BDB.Find(context.Background(), bson.M{"userId": userID, "date": rawDate})
	if err != nil {
		config.ErrorStatus("failed to get briefs", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(map[string]interface{}{
		"date":   rawDate,
		"briefs": practice.CalendarDayContent(briefs, day),
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
