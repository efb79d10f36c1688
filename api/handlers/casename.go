package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kurup-associates/legal-office-api/config"
	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/models"
)

// CaseName exported for testing purposes
type CaseName struct {
	DB databases.CaseNameDatabase
}

// CaseNameHandler returns every case type. The list feeds dropdowns, so it is
// never paginated.
func (c CaseName) CaseNameHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := c.DB.Find(context.TODO(), bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get case names", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.CaseName{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateCaseNameHandler adds a case type to the dropdown source
func (c CaseName) CreateCaseNameHandler(w http.ResponseWriter, r *http.Request) {
	var caseName models.CaseName
	if err := json.NewDecoder(r.Body).Decode(&caseName); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if caseName.Name == "" {
		config.ErrorStatus("name is required", http.StatusBadRequest, w, fmt.Errorf("empty case name"))
		return
	}

	caseName.ID = primitive.NewObjectID()
	caseName.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	_, err := c.DB.InsertOne(context.Background(), caseName)
	if err != nil {
		config.ErrorStatus("failed to create case name", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "case name created successfully",
		"id":      caseName.ID.Hex(),
	})
}
