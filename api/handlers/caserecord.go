package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/kurup-associates/legal-office-api/config"
	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/models"
)

var (
	// Page denotes the starting Page for pagination results
	Page = 0
)

// CaseRecord exported for testing purposes
type CaseRecord struct {
	DB databases.CaseRecordDatabase
}

// CaseRecordHandler returns the paginated case register
func (c CaseRecord) CaseRecordHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)
	dbResp, err := c.DB.Find(context.TODO(), bson.D{}, &options.FindOptions{Limit: &limit64, Skip: &skip64, Sort: bson.D{{Key: "created_at", Value: -1}}})
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusNotFound, w, err)
		return
	}
	// The register page iterates the response directly, so an empty result must
	// still be a JSON array
	if len(dbResp) == 0 {
		dbResp = []models.CaseRecord{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CaseRecordByIDHandler returns a case by ID
func (c CaseRecord) CaseRecordByIDHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	zap.S().Debugf("case_id: %v", caseID)

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := c.DB.FindOne(context.Background(), bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CaseRecordsBySocietyHandler returns all cases filed under the given society
func (c CaseRecord) CaseRecordsBySocietyHandler(w http.ResponseWriter, r *http.Request) {
	society := mux.Vars(r)["society"]

	zap.S().Debugf("society: '%v'", society)

	dbResp, err := c.DB.Find(context.TODO(), bson.M{"society": society})
	if err != nil {
		config.ErrorStatus("failed to get cases by society", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.CaseRecord{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateCaseRecordHandler creates a case
func (c CaseRecord) CreateCaseRecordHandler(w http.ResponseWriter, r *http.Request) {
	var record models.CaseRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	record.ID = primitive.NewObjectID()
	record.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	record.UpdatedAt = record.CreatedAt

	_, err := c.DB.InsertOne(context.Background(), record)
	if err != nil {
		config.ErrorStatus("failed to create case", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "case created successfully",
		"id":      record.ID.Hex(),
	})
}

// UpdateCaseRecordHandler updates a case's details
func (c CaseRecord) UpdateCaseRecordHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	// The id and audit stamps are never client writable
	delete(updates, "id")
	delete(updates, "_id")
	delete(updates, "created_at")
	updates["updated_at"] = primitive.NewDateTimeFromTime(time.Now())

	result, err := c.DB.UpdateOne(context.Background(), bson.M{"_id": cID}, bson.M{"$set": updates})
	if err != nil {
		config.ErrorStatus("failed to update case", http.StatusInternalServerError, w, err)
		return
	}
	if result.MatchedCount == 0 {
		config.ErrorStatus("case not found", http.StatusNotFound, w, fmt.Errorf("no case with id %s", caseID))
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "case updated successfully",
		"id":      caseID,
	})
}

// DeleteCaseRecordHandler deletes a case
func (c CaseRecord) DeleteCaseRecordHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	if err := c.DB.DeleteOne(context.Background(), bson.M{"_id": cID}); err != nil {
		config.ErrorStatus("failed to delete case", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "case deleted successfully",
		"id":      caseID,
	})
}

func getPage(Page int, r *http.Request) int {
	if r.URL.Query().Get("page") == "" {
		zap.S().Warnf("page not set, using default of %v", Page)
	} else {
		var err error
		Page, err = strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			zap.S().Errorf(fmt.Sprintf("error parsing page number: %v", err))
		}
		if Page < 0 {
			zap.S().Warnf(fmt.Sprintf("cannot process page number less than 1. Got: %v", Page))
			return 0
		}
	}
	return Page
}
