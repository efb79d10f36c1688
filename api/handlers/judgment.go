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

// Judgment exported for testing purposes
type Judgment struct {
	DB databases.JudgmentDatabase
}

// JudgmentHandler returns the paginated judgment register
func (j Judgment) JudgmentHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)
	dbResp, err := j.DB.Find(context.TODO(), bson.D{}, &options.FindOptions{Limit: &limit64, Skip: &skip64, Sort: bson.D{{Key: "created_at", Value: -1}}})
	if err != nil {
		config.ErrorStatus("failed to get judgments", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Judgment{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateJudgmentHandler files a judgment. FileURL, when present, points at the
// uploaded document in Cloudinary.
func (j Judgment) CreateJudgmentHandler(w http.ResponseWriter, r *http.Request) {
	var judgment models.Judgment
	if err := json.NewDecoder(r.Body).Decode(&judgment); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	judgment.ID = primitive.NewObjectID()
	judgment.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	_, err := j.DB.InsertOne(context.Background(), judgment)
	if err != nil {
		config.ErrorStatus("failed to create judgment", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "judgment created successfully",
		"id":      judgment.ID.Hex(),
	})
}

// DeleteJudgmentHandler removes a judgment from the register
func (j Judgment) DeleteJudgmentHandler(w http.ResponseWriter, r *http.Request) {
	judgmentID := mux.Vars(r)["judgment_id"]

	jID, err := primitive.ObjectIDFromHex(judgmentID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	if err := j.DB.DeleteOne(context.Background(), bson.M{"_id": jID}); err != nil {
		config.ErrorStatus("failed to delete judgment", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "judgment deleted successfully",
		"id":      judgmentID,
	})
}
