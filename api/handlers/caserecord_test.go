package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kurup-associates/legal-office-api/api/handlers"
	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/databases/mocks"
	"github.com/kurup-associates/legal-office-api/models"
)

func TestCaseRecord_CaseRecordByIDHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/cases/1234", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"case_id": "1234"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &MockDatabaseHelper{}

	caseDatabase := databases.NewCaseRecordDatabase(db)
	u := handlers.CaseRecord{
		DB: caseDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.CaseRecordByIDHandler)

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

func TestCaseRecord_CaseRecordByIDHandlerFailedToFindOne(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/cases/608cafe595eb9dc05379ffff", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"case_id": "608cafe595eb9dc05379ffff"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	singleResultHelper = &mocks.SingleResultHelper{}

	singleResultHelper.(*mocks.SingleResultHelper).On("Decode", mock.Anything).Return(errors.New("mocked-error"))
	conn.(*mocks.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*MockDatabaseHelper).On("Collection", "cases").Return(conn)

	caseDatabase := databases.NewCaseRecordDatabase(db)
	u := handlers.CaseRecord{
		DB: caseDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.CaseRecordByIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusNotFound)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "failed to get case by ID", Error: "mocked-error"}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestCaseRecord_CaseRecordHandlerEmpty(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/cases?limit=10&page=0", nil)
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

	cursorHelper.(*mocks.CursorHelper).On("Decode", mock.Anything).Return(nil)
	conn.(*mocks.CollectionHelper).On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursorHelper)
	db.(*MockDatabaseHelper).On("Collection", "cases").Return(conn)

	caseDatabase := databases.NewCaseRecordDatabase(db)
	u := handlers.CaseRecord{
		DB: caseDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.CaseRecordHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	if rr.Body.String() != "[]" {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: []", rr.Body.String())
	}
}

func TestCaseRecord_CreateCaseRecordHandler(t *testing.T) {
	body := bytes.NewBufferString(`{"case_name":"Civil Suit","case_no":412,"case_year":2024,"name":"R. Nair","society":"Ashoka Towers","lawyer":"P. Kurup","represents":"Plaintiff","status":"Active"}`)
	req, err := http.NewRequest("POST", "/api/v1/cases", body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var insertOneResultHelper databases.InsertOneResultHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	insertOneResultHelper = &mocks.InsertOneResultHelper{}

	conn.(*mocks.CollectionHelper).On("InsertOne", mock.Anything, mock.Anything).Return(insertOneResultHelper)
	db.(*MockDatabaseHelper).On("Collection", "cases").Return(conn)

	caseDatabase := databases.NewCaseRecordDatabase(db)
	u := handlers.CaseRecord{
		DB: caseDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.CreateCaseRecordHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusCreated {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusCreated)
	}

	if !strings.Contains(rr.Body.String(), "case created successfully") {
		t.Errorf("handler returned unexpected body: \ngot: %v", rr.Body.String())
	}
}

func TestCaseRecord_UpdateCaseRecordHandlerNotFound(t *testing.T) {
	body := bytes.NewBufferString(`{"status":"Disposed"}`)
	req, err := http.NewRequest("PUT", "/api/v1/cases/608cafe595eb9dc05379ffff", body)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"case_id": "608cafe595eb9dc05379ffff"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}

	conn.(*mocks.CollectionHelper).On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 0}, nil)
	db.(*MockDatabaseHelper).On("Collection", "cases").Return(conn)

	caseDatabase := databases.NewCaseRecordDatabase(db)
	u := handlers.CaseRecord{
		DB: caseDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.UpdateCaseRecordHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusNotFound)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "case not found", Error: "no case with id 608cafe595eb9dc05379ffff"}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestCaseRecord_DeleteCaseRecordHandler(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/api/v1/cases/608cafe595eb9dc05379b7f4", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"case_id": "608cafe595eb9dc05379b7f4"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}

	conn.(*mocks.CollectionHelper).On("DeleteOne", mock.Anything, mock.Anything).Return(nil)
	db.(*MockDatabaseHelper).On("Collection", "cases").Return(conn)

	caseDatabase := databases.NewCaseRecordDatabase(db)
	u := handlers.CaseRecord{
		DB: caseDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.DeleteCaseRecordHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	if !strings.Contains(rr.Body.String(), "case deleted successfully") {
		t.Errorf("handler returned unexpected body: \ngot: %v", rr.Body.String())
	}
}
