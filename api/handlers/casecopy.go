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

// CaseCopy exported for testing purposes
type CaseCopy struct {
	DB databases.CaseCopyDatabase
}

// CaseCopyHandler returns the paginated case copy register
func (c CaseCopy) CaseCopyHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)
	dbResp, err := c.DB.Find(context.TODO(), bson.D{}, &options.FindOptions{Limit: &limit64, Skip: &skip64, Sort: bson.D{{Key: "created_at", Value: -1}}})
	if err != nil {
		config.ErrorStatus("failed to get case copies", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.CaseCopy{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateCaseCopyHandler records a case copy request
func (c CaseCopy) CreateCaseCopyHandler(w http.ResponseWriter, r *http.Request) {
	var copyReq models.CaseCopy
	if err := json.NewDecoder(r.Body).Decode(&copyReq); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	copyReq.ID = primitive.NewObjectID()
	copyReq.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	_, err := c.DB.InsertOne(context.Background(), copyReq)
	if err != nil {
		config.ErrorStatus("failed to create case copy", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "case copy created successfully",
		"id":      copyReq.ID.Hex(),
	})
}

// DeleteCaseCopyHandler removes a case copy entry
func (c CaseCopy) DeleteCaseCopyHandler(w http.ResponseWriter, r *http.Request) {
	copyID := mux.Vars(r)["case_copy_id"]

	cID, err := primitive.ObjectIDFromHex(copyID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	if err := c.DB.DeleteOne(context.Background(), bson.M{"_id": cID}); err != nil {
		config.ErrorStatus("failed to delete case copy", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "case copy deleted successfully",
		"id":      copyID,
	})
}
