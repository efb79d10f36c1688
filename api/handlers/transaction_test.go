package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/kurup-associates/legal-office-api/api/handlers"
	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/databases/mocks"
	"github.com/kurup-associates/legal-office-api/models"
)

func TestTransaction_CreateTransactionHandlerInvalidType(t *testing.T) {
	body := bytes.NewBufferString(`{"type":"loan","category":"Court Fees","amount":1500,"date":"2026-08-01"}`)
	req, err := http.NewRequest("POST", "/api/v1/transactions", body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &MockDatabaseHelper{}

	tx := handlers.Transaction{
		DB: databases.NewTransactionDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(tx.CreateTransactionHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "invalid transaction type", Error: `unknown transaction type: "loan"`}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestTransaction_CreateTransactionHandler(t *testing.T) {
	body := bytes.NewBufferString(`{"type":"expense","category":"Court Fees","amount":1500,"date":"2026-08-01","description":"Filing fee"}`)
	req, err := http.NewRequest("POST", "/api/v1/transactions", body)
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
	db.(*MockDatabaseHelper).On("Collection", "transactions").Return(conn)

	tx := handlers.Transaction{
		DB: databases.NewTransactionDatabase(db),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(tx.CreateTransactionHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusCreated {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusCreated)
	}

	if !strings.Contains(rr.Body.String(), "transaction created successfully") {
		t.Errorf("handler returned unexpected body: \ngot: %v", rr.Body.String())
	}
}
