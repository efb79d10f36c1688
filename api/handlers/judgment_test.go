package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"

	"github.com/kurup-associates/legal-office-api/api/handlers"
	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/databases/mocks"
	"github.com/kurup-associates/legal-office-api/models"
)

func TestJudgment_DeleteJudgmentHandlerBadID(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/api/v1/judgments/1234", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"judgment_id": "1234"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &MockDatabaseHelper{}

	j := handlers.Judgment{
		DB: databases.NewJudgmentDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(j.DeleteJudgmentHandler)

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

func TestJudgment_JudgmentHandlerFindError(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/judgments?limit=10", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	cursorHelper.(*mocks.CursorHelper).On("Decode", mock.Anything).Return(errors.New("mocked-error"))
	conn.(*mocks.CollectionHelper).On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursorHelper)
	db.(*MockDatabaseHelper).On("Collection", "judgments").Return(conn)

	j := handlers.Judgment{
		DB: databases.NewJudgmentDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(j.JudgmentHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusNotFound)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "failed to get judgments", Error: "mocked-error"}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}
