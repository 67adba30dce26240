package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/advocatehq/advocate-practice-api/api"
	"github.com/advocatehq/advocate-practice-api/api/scheduler"
	"github.com/advocatehq/advocate-practice-api/config"
	"github.com/advocatehq/advocate-practice-api/databases"
	"github.com/advocatehq/advocate-practice-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	DB       databases.CollectionHelper
	Config   config.Config
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	api.SetupGoGuardian()

	r := mux.NewRouter()

	m := Matter{
		DB:  databases.NewMatterDatabase(a.dbHelper),
		BDB: databases.NewBriefDatabase(a.dbHelper),
		WDB: databases.NewWorkRecordDatabase(a.dbHelper),
	}
	af := AttorneyFirm{
		DB:  databases.NewAttorneyFirmDatabase(a.dbHelper),
		MDB: databases.NewMatterDatabase(a.dbHelper),
		BDB: databases.NewBriefDatabase(a.dbHelper),
		WDB: databases.NewWorkRecordDatabase(a.dbHelper),
	}
	br := Brief{
		DB:  databases.NewBriefDatabase(a.dbHelper),
		MDB: databases.NewMatterDatabase(a.dbHelper),
		ADB: databases.NewAttorneyFirmDatabase(a.dbHelper),
		WDB: databases.NewWorkRecordDatabase(a.dbHelper),
		SDB: databases.NewSettingsDatabase(a.dbHelper),
		PDB: databases.NewPreferencesDatabase(a.dbHelper),
	}
	wr := WorkRecord{
		DB:  databases.NewWorkRecordDatabase(a.dbHelper),
		SDB: databases.NewSettingsDatabase(a.dbHelper),
	}
	st := Settings{DB: databases.NewSettingsDatabase(a.dbHelper)}
	pr := Preferences{DB: databases.NewPreferencesDatabase(a.dbHelper)}
	dash := Dashboard{
		MDB: databases.NewMatterDatabase(a.dbHelper),
		BDB: databases.NewBriefDatabase(a.dbHelper),
		ADB: databases.NewAttorneyFirmDatabase(a.dbHelper),
	}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/anonymous", http.HandlerFunc(api.CreateAnonymousSession)).Methods("POST")
	apiCreate.Handle("/auth/token", http.HandlerFunc(api.CreateToken)).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/ws", http.HandlerFunc(HandleStreamWebSocket)).Methods("GET")

	apiCreate.Handle("/matter", api.Middleware(http.HandlerFunc(m.CreateMatterHandler))).Methods("POST")
	apiCreate.Handle("/matter/{matter_id}", api.Middleware(http.HandlerFunc(m.MatterByIDHandler))).Methods("GET")
	apiCreate.Handle("/matter/{matter_id}", api.Middleware(http.HandlerFunc(m.UpdateMatterHandler))).Methods("PUT")
	apiCreate.Handle("/matter/{matter_id}", api.Middleware(http.HandlerFunc(m.DeleteMatterHandler))).Methods("DELETE")
	apiCreate.Handle("/matters/user/{user_id}", api.Middleware(http.HandlerFunc(m.MattersByUserIDHandler))).Methods("GET")

	apiCreate.Handle("/attorney", api.Middleware(http.HandlerFunc(af.CreateAttorneyFirmHandler))).Methods("POST")
	apiCreate.Handle("/attorney/{attorney_id}", api.Middleware(http.HandlerFunc(af.AttorneyFirmByIDHandler))).Methods("GET")
	apiCreate.Handle("/attorney/{attorney_id}", api.Middleware(http.HandlerFunc(af.UpdateAttorneyFirmHandler))).Methods("PUT")
	apiCreate.Handle("/attorney/{attorney_id}", api.Middleware(http.HandlerFunc(af.DeleteAttorneyFirmHandler))).Methods("DELETE")
	apiCreate.Handle("/attorneys/user/{user_id}", api.Middleware(http.HandlerFunc(af.AttorneyFirmsByUserIDHandler))).Methods("GET")

	apiCreate.Handle("/brief", api.Middleware(http.HandlerFunc(br.CreateBriefHandler))).Methods("POST")
	apiCreate.Handle("/brief/{brief_id}", api.Middleware(http.HandlerFunc(br.BriefByIDHandler))).Methods("GET")
	apiCreate.Handle("/brief/{brief_id}", api.Middleware(http.HandlerFunc(br.UpdateBriefHandler))).Methods("PUT")
	apiCreate.Handle("/brief/{brief_id}", api.Middleware(http.HandlerFunc(br.DeleteBriefHandler))).Methods("DELETE")
	apiCreate.Handle("/brief/{brief_id}/complete", api.Middleware(http.HandlerFunc(br.CompleteBriefHandler))).Methods("POST")
	apiCreate.Handle("/briefs/user/{user_id}", api.Middleware(http.HandlerFunc(br.BriefsByUserIDHandler))).Methods("GET")

	apiCreate.Handle("/workRecord/{work_record_id}", api.Middleware(http.HandlerFunc(wr.DeleteWorkRecordHandler))).Methods("DELETE")
	apiCreate.Handle("/workRecord/{work_record_id}/invoice", api.Middleware(http.HandlerFunc(wr.AssignInvoiceNumberHandler))).Methods("PUT")
	apiCreate.Handle("/workRecords/user/{user_id}", api.Middleware(http.HandlerFunc(wr.WorkRecordsByUserIDHandler))).Methods("GET")
	apiCreate.Handle("/workRecords/user/{user_id}/export", api.Middleware(http.HandlerFunc(wr.ExportWorkRecordsHandler))).Methods("GET")

	apiCreate.Handle("/settings/user/{user_id}", api.Middleware(http.HandlerFunc(st.SettingsByUserIDHandler))).Methods("GET")
	apiCreate.Handle("/settings/user/{user_id}", api.Middleware(http.HandlerFunc(st.UpdateSettingsHandler))).Methods("PUT")

	apiCreate.Handle("/preferences/user/{user_id}/drafting-options", api.Middleware(http.HandlerFunc(pr.DraftingOptionsByUserIDHandler))).Methods("GET")
	apiCreate.Handle("/preferences/user/{user_id}/drafting-options", api.Middleware(http.HandlerFunc(pr.UpdateDraftingOptionsHandler))).Methods("PUT")

	apiCreate.Handle("/dashboard/user/{user_id}", api.Middleware(http.HandlerFunc(dash.DashboardHandler))).Methods("GET")
	apiCreate.Handle("/calendar/user/{user_id}/{date}", api.Middleware(http.HandlerFunc(dash.CalendarHandler))).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("advocate-practice-api has connected to the database")

	sched := scheduler.NewScheduler(databases.NewBriefDatabase(a.dbHelper))
	sched.Start()

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
