package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kurup-associates/legal-office-api/config"
	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/models"
)

// Release exported for testing purposes
type Release struct {
	DB databases.ReleaseDatabase
}

// ReleaseHandler returns the release notes shown on the dashboard
func (rel Release) ReleaseHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := rel.DB.Find(context.TODO(), bson.D{}, &options.FindOptions{Sort: bson.D{{Key: "created_at", Value: -1}}})
	if err != nil {
		config.ErrorStatus("failed to get releases", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Release{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateReleaseHandler publishes a release note
func (rel Release) CreateReleaseHandler(w http.ResponseWriter, r *http.Request) {
	var release models.Release
	if err := json.NewDecoder(r.Body).Decode(&release); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if release.Version == "" {
		config.ErrorStatus("version is required", http.StatusBadRequest, w, fmt.Errorf("empty version"))
		return
	}

	release.ID = primitive.NewObjectID()
	release.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	_, err := rel.DB.InsertOne(context.Background(), release)
	if err != nil {
		config.ErrorStatus("failed to create release", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "release created successfully",
		"id":      release.ID.Hex(),
	})
}
