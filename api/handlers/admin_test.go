package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kurup-associates/legal-office-api/api/handlers"
	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/databases/mocks"
	"github.com/kurup-associates/legal-office-api/models"
)

func TestAdmin_AdminLoginHandlerUnknownEmail(t *testing.T) {
	body := bytes.NewBufferString(`{"email":"nobody@example.com","password":"secret123"}`)
	req, err := http.NewRequest("POST", "/api/v1/admin/login", body)
	if err != nil {
		t.Fatal(err)
	}

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	singleResultHelper = &mocks.SingleResultHelper{}

	singleResultHelper.(*mocks.SingleResultHelper).On("Decode", mock.Anything).Return(errors.New("mongo: no documents in result"))
	conn.(*mocks.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*MockDatabaseHelper).On("Collection", "admins").Return(conn)

	a := handlers.Admin{
		DB: databases.NewAdminDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(a.AdminLoginHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusUnauthorized {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusUnauthorized)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "invalid credentials", Error: "mongo: no documents in result"}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestAdmin_UpdateSupportStatusHandlerBadID(t *testing.T) {
	body := bytes.NewBufferString(`{"status":"Resolved"}`)
	req, err := http.NewRequest("PUT", "/api/v1/admin/support-tickets/1234/status", body)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"ticket_id": "1234"})

	db := &MockDatabaseHelper{}

	a := handlers.Admin{
		SDB: databases.NewSupportRequestDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(a.UpdateSupportStatusHandler)

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

func TestAdmin_UpdateSupportStatusHandlerInvalidStatus(t *testing.T) {
	body := bytes.NewBufferString(`{"status":"Escalated"}`)
	req, err := http.NewRequest("PUT", "/api/v1/admin/support-tickets/608cafe595eb9dc05379b7f4/status", body)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"ticket_id": "608cafe595eb9dc05379b7f4"})

	db := &MockDatabaseHelper{}

	a := handlers.Admin{
		SDB: databases.NewSupportRequestDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(a.UpdateSupportStatusHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "invalid status", Error: `unknown ticket status: "Escalated"`}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestAdmin_UpdateSupportStatusHandlerReopenClosedTicket(t *testing.T) {
	// There is no transition guard on ticket statuses: a closed ticket can go
	// straight back to Open
	body := bytes.NewBufferString(`{"status":"Open"}`)
	req, err := http.NewRequest("PUT", "/api/v1/admin/support-tickets/608cafe595eb9dc05379b7f4/status", body)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"ticket_id": "608cafe595eb9dc05379b7f4"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}

	conn.(*mocks.CollectionHelper).On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)
	db.(*MockDatabaseHelper).On("Collection", "support_requests").Return(conn)

	a := handlers.Admin{
		SDB: databases.NewSupportRequestDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(a.UpdateSupportStatusHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}
}

func TestAdmin_GetAllSupportTicketsHandlerEmpty(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/admin/support-tickets", nil)
	if err != nil {
		t.Fatal(err)
	}

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	cursorHelper.(*mocks.CursorHelper).On("Decode", mock.Anything).Return(nil)
	conn.(*mocks.CollectionHelper).On("Find", mock.Anything, mock.Anything).Return(cursorHelper)
	db.(*MockDatabaseHelper).On("Collection", "support_requests").Return(conn)

	a := handlers.Admin{
		SDB: databases.NewSupportRequestDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(a.GetAllSupportTicketsHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	if rr.Body.String() != "[]" {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: []", rr.Body.String())
	}
}

func TestAdmin_AdminReplyToTicketHandler(t *testing.T) {
	body := bytes.NewBufferString(`{"response":"We are looking into it"}`)
	req, err := http.NewRequest("POST", "/api/v1/admin/support-tickets/608cafe595eb9dc05379b7f4/reply", body)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"ticket_id": "608cafe595eb9dc05379b7f4"})

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.SupportRequest)
		(*arg).UserEmail = "clerk@example.com"
		(*arg).Subject = "Printer down"
		(*arg).Status = models.SupportStatusResolved
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)

	var capturedUpdate bson.M
	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil).
		Run(func(args mock.Arguments) {
			capturedUpdate = args.Get(2).(bson.M)
		})
	db.On("Collection", "support_requests").Return(conn)

	a := handlers.Admin{
		SDB: databases.NewSupportRequestDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(a.AdminReplyToTicketHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	// The reply writes only admin_response; ticket status is its own operation
	// and stays whatever it was
	conn.AssertNumberOfCalls(t, "UpdateOne", 1)
	set := capturedUpdate["$set"].(bson.M)
	if set["admin_response"] != "We are looking into it" {
		t.Errorf("update set wrong admin_response: got %v", set["admin_response"])
	}
	if _, ok := set["status"]; ok {
		t.Errorf("reply must not touch status, got %v", set["status"])
	}
}
