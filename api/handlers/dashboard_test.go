package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/kurup-associates/legal-office-api/api/handlers"
	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/databases/mocks"
	"github.com/kurup-associates/legal-office-api/models"
)

func TestDashboard_MetricsHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/dashboard/metrics", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &MockDatabaseHelper{}

	caseConn := &mocks.CollectionHelper{}
	orderConn := &mocks.CollectionHelper{}
	judgmentConn := &mocks.CollectionHelper{}

	// Cases only count when they are not in a terminal status
	caseConn.On("CountDocuments", mock.Anything, bson.M{
		"status": bson.M{"$nin": []string{models.CaseStatusClosed, models.CaseStatusArchived}},
	}).Return(int64(10), nil)

	// The society counter runs over the full case list through the same reducer
	// the societies view uses
	caseCursor := &mocks.CursorHelper{}
	caseCursor.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.CaseRecord)
		*arg = []models.CaseRecord{
			{Society: "Ashoka Towers"},
			{Society: "  Ashoka Towers  "},
			{Society: "Green Park CHS"},
			{Society: ""},
		}
	})
	caseConn.On("Find", mock.Anything, mock.Anything).Return(caseCursor)

	// Upcoming hearings are windowed on next_date for the next 14 days
	orderConn.On("CountDocuments", mock.Anything, databases.NextDateWindow(time.Now().UTC(), 14)).Return(int64(4), nil)

	judgmentConn.On("CountDocuments", mock.Anything, bson.D{}).Return(int64(2), nil)

	db.On("Collection", "cases").Return(caseConn)
	db.On("Collection", "interim_orders").Return(orderConn)
	db.On("Collection", "judgments").Return(judgmentConn)

	d := handlers.Dashboard{
		Cases:         databases.NewCaseRecordDatabase(db),
		InterimOrders: databases.NewInterimOrderDatabase(db),
		Judgments:     databases.NewJudgmentDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(d.MetricsHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	expected := `{"active_cases":10,"societies":2,"upcoming_hearings":4,"judgments":2}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestDashboard_MetricsHandlerPartialFailure(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/dashboard/metrics", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &MockDatabaseHelper{}

	caseConn := &mocks.CollectionHelper{}
	orderConn := &mocks.CollectionHelper{}
	judgmentConn := &mocks.CollectionHelper{}

	// Each metric is independent: a failing query reports zero while the others
	// still count
	caseConn.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), errors.New("mocked-error"))

	caseCursor := &mocks.CursorHelper{}
	caseCursor.On("Decode", mock.Anything).Return(errors.New("mocked-error"))
	caseConn.On("Find", mock.Anything, mock.Anything).Return(caseCursor)

	orderConn.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(4), nil)
	judgmentConn.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(2), nil)

	db.On("Collection", "cases").Return(caseConn)
	db.On("Collection", "interim_orders").Return(orderConn)
	db.On("Collection", "judgments").Return(judgmentConn)

	d := handlers.Dashboard{
		Cases:         databases.NewCaseRecordDatabase(db),
		InterimOrders: databases.NewInterimOrderDatabase(db),
		Judgments:     databases.NewJudgmentDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(d.MetricsHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	expected := `{"active_cases":0,"societies":0,"upcoming_hearings":4,"judgments":2}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}
