package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/kurup-associates/legal-office-api/api"
	"github.com/kurup-associates/legal-office-api/config"
	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	Notifier *Notifier
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewClerkUserDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	if a.Notifier == nil {
		a.Notifier = NewNotifier()
	}

	r := mux.NewRouter()
	r.Use(api.MetricsMiddleware)

	clerk := Clerk{DB: databases.NewClerkUserDatabase(a.dbHelper), Notifier: a.Notifier}
	admin := Admin{
		DB:       databases.NewAdminDatabase(a.dbHelper),
		ResetDB:  databases.NewAdminResetDatabase(a.dbHelper),
		SDB:      databases.NewSupportRequestDatabase(a.dbHelper),
		Config:   a.Config,
		Notifier: a.Notifier,
	}
	caseRecord := CaseRecord{DB: databases.NewCaseRecordDatabase(a.dbHelper)}
	society := Society{DB: databases.NewCaseRecordDatabase(a.dbHelper)}
	dashboard := Dashboard{
		Cases:         databases.NewCaseRecordDatabase(a.dbHelper),
		InterimOrders: databases.NewInterimOrderDatabase(a.dbHelper),
		Judgments:     databases.NewJudgmentDatabase(a.dbHelper),
	}
	interimOrder := InterimOrder{DB: databases.NewInterimOrderDatabase(a.dbHelper)}
	judgment := Judgment{DB: databases.NewJudgmentDatabase(a.dbHelper)}
	caseCopy := CaseCopy{DB: databases.NewCaseCopyDatabase(a.dbHelper)}
	caseName := CaseName{DB: databases.NewCaseNameDatabase(a.dbHelper)}
	transaction := Transaction{DB: databases.NewTransactionDatabase(a.dbHelper)}
	support := SupportRequest{DB: databases.NewSupportRequestDatabase(a.dbHelper), Notifier: a.Notifier}
	release := Release{DB: databases.NewReleaseDatabase(a.dbHelper)}
	report := Report{DB: databases.NewCaseRecordDatabase(a.dbHelper)}
	metrics := Metrics{}
	cloudinaryHandler := CloudinaryHandler{}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	// admin console event stream
	r.HandleFunc("/ws/admin", a.Notifier.AdminSocketHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(30 * time.Second))

	// Hosted session endpoints. Token creation carries the public-only guard; an
	// already signed-in clerk gets bounced back to the dashboard.
	apiCreate.Handle("/auth/token", api.PublicOnly(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	// Fallback login and the signup flow stay public. The fallback JWT is never
	// consulted by the public-only guard, so a fallback session can still reach
	// these routes.
	apiCreate.Handle("/auth/clerk-login", api.PublicOnly(http.HandlerFunc(clerk.ClerkLoginHandler))).Methods("POST")
	apiCreate.Handle("/clerks/signup", api.PublicOnly(http.HandlerFunc(clerk.SignupHandler))).Methods("POST")
	apiCreate.Handle("/clerks/application-status", api.PublicOnly(http.HandlerFunc(clerk.ApplicationStatusHandler))).Methods("GET")

	apiCreate.Handle("/cases", api.Middleware(http.HandlerFunc(caseRecord.CaseRecordHandler))).Methods("GET")
	apiCreate.Handle("/cases", api.Middleware(http.HandlerFunc(caseRecord.CreateCaseRecordHandler))).Methods("POST")
	apiCreate.Handle("/cases/society/{society}", api.Middleware(http.HandlerFunc(caseRecord.CaseRecordsBySocietyHandler))).Methods("GET")
	apiCreate.Handle("/cases/{case_id}", api.Middleware(http.HandlerFunc(caseRecord.CaseRecordByIDHandler))).Methods("GET")
	apiCreate.Handle("/cases/{case_id}", api.Middleware(http.HandlerFunc(caseRecord.UpdateCaseRecordHandler))).Methods("PUT")
	apiCreate.Handle("/cases/{case_id}", api.Middleware(http.HandlerFunc(caseRecord.DeleteCaseRecordHandler))).Methods("DELETE")

	apiCreate.Handle("/societies", api.Middleware(http.HandlerFunc(society.SocietyStatsHandler))).Methods("GET")
	apiCreate.Handle("/dashboard/metrics", api.Middleware(http.HandlerFunc(dashboard.MetricsHandler))).Methods("GET")

	apiCreate.Handle("/interim-orders", api.Middleware(http.HandlerFunc(interimOrder.InterimOrderHandler))).Methods("GET")
	apiCreate.Handle("/interim-orders", api.Middleware(http.HandlerFunc(interimOrder.CreateInterimOrderHandler))).Methods("POST")

	apiCreate.Handle("/judgments", api.Middleware(http.HandlerFunc(judgment.JudgmentHandler))).Methods("GET")
	apiCreate.Handle("/judgments", api.Middleware(http.HandlerFunc(judgment.CreateJudgmentHandler))).Methods("POST")
	apiCreate.Handle("/judgments/{judgment_id}", api.Middleware(http.HandlerFunc(judgment.DeleteJudgmentHandler))).Methods("DELETE")

	apiCreate.Handle("/case-copies", api.Middleware(http.HandlerFunc(caseCopy.CaseCopyHandler))).Methods("GET")
	apiCreate.Handle("/case-copies", api.Middleware(http.HandlerFunc(caseCopy.CreateCaseCopyHandler))).Methods("POST")
	apiCreate.Handle("/case-copies/{case_copy_id}", api.Middleware(http.HandlerFunc(caseCopy.DeleteCaseCopyHandler))).Methods("DELETE")

	apiCreate.Handle("/case-names", api.Middleware(http.HandlerFunc(caseName.CaseNameHandler))).Methods("GET")
	apiCreate.Handle("/case-names", api.Middleware(http.HandlerFunc(caseName.CreateCaseNameHandler))).Methods("POST")

	apiCreate.Handle("/transactions", api.Middleware(http.HandlerFunc(transaction.TransactionHandler))).Methods("GET")
	apiCreate.Handle("/transactions", api.Middleware(http.HandlerFunc(transaction.CreateTransactionHandler))).Methods("POST")
	apiCreate.Handle("/transactions/{transaction_id}", api.Middleware(http.HandlerFunc(transaction.DeleteTransactionHandler))).Methods("DELETE")

	apiCreate.Handle("/support-requests", api.Middleware(http.HandlerFunc(support.CreateSupportRequestHandler))).Methods("POST")
	apiCreate.Handle("/support-requests", api.Middleware(http.HandlerFunc(support.SupportRequestsByEmailHandler))).Methods("GET")

	apiCreate.Handle("/releases", api.Middleware(http.HandlerFunc(release.ReleaseHandler))).Methods("GET")
	apiCreate.Handle("/releases", api.Middleware(http.HandlerFunc(release.CreateReleaseHandler))).Methods("POST")

	apiCreate.Handle("/reports/cases", api.Middleware(http.HandlerFunc(report.CaseListReportHandler))).Methods("GET")
	apiCreate.Handle("/reports/cases/{case_id}", api.Middleware(http.HandlerFunc(report.CaseDetailReportHandler))).Methods("GET")

	apiCreate.Handle("/generate-signature", api.Middleware(http.HandlerFunc(cloudinaryHandler.GenerateSignature))).Methods("POST")

	// Admin console. Everything below requires the admin scoped token except the
	// login and password reset flow that issues it.
	apiCreate.Handle("/admin/login", http.HandlerFunc(admin.AdminLoginHandler)).Methods("POST")
	apiCreate.Handle("/admin/forgot-password", http.HandlerFunc(admin.ForgotPasswordHandler)).Methods("POST")
	apiCreate.Handle("/admin/reset-password", http.HandlerFunc(admin.ResetPasswordHandler)).Methods("POST")
	apiCreate.Handle("/admin/pending-requests", api.AdminOnly(http.HandlerFunc(clerk.PendingRequestsHandler))).Methods("GET")
	apiCreate.Handle("/admin/active-clerks", api.AdminOnly(http.HandlerFunc(clerk.ActiveClerksHandler))).Methods("GET")
	apiCreate.Handle("/admin/clerks/{clerk_id}/status", api.AdminOnly(http.HandlerFunc(clerk.UpdateClerkStatusHandler))).Methods("PUT")
	apiCreate.Handle("/admin/support-tickets", api.AdminOnly(http.HandlerFunc(admin.GetAllSupportTicketsHandler))).Methods("GET")
	apiCreate.Handle("/admin/support-tickets/{ticket_id}/status", api.AdminOnly(http.HandlerFunc(admin.UpdateSupportStatusHandler))).Methods("PUT")
	apiCreate.Handle("/admin/support-tickets/{ticket_id}/reply", api.AdminOnly(http.HandlerFunc(admin.AdminReplyToTicketHandler))).Methods("POST")
	apiCreate.Handle("/admin/metrics", api.AdminOnly(http.HandlerFunc(metrics.MetricsHandler))).Methods("GET")

	// swagger docs hosted at "/"
	r.PathPrefix("/").Handler(http.StripPrefix("/", http.FileServer(http.Dir("./docs/"))))
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
	zap.S().Info("legal-office-api has connected to the database")

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// DBHelper exposes the database helper for wiring background jobs in main
func (a *App) DBHelper() databases.DatabaseHelper {
	return a.dbHelper
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
