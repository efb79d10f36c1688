package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/kurup-associates/legal-office-api/config"
	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/models"
)

// InterimOrder exported for testing purposes
type InterimOrder struct {
	DB databases.InterimOrderDatabase
}

// InterimOrderHandler returns the paginated interim order register
func (i InterimOrder) InterimOrderHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)
	dbResp, err := i.DB.Find(context.TODO(), bson.D{}, &options.FindOptions{Limit: &limit64, Skip: &skip64, Sort: bson.D{{Key: "created_at", Value: -1}}})
	if err != nil {
		config.ErrorStatus("failed to get interim orders", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.InterimOrder{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateInterimOrderHandler files a new interim order. The register is append
// mostly: there is no update or delete route.
func (i InterimOrder) CreateInterimOrderHandler(w http.ResponseWriter, r *http.Request) {
	var order models.InterimOrder
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	order.ID = primitive.NewObjectID()
	order.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	_, err := i.DB.InsertOne(context.Background(), order)
	if err != nil {
		config.ErrorStatus("failed to create interim order", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "interim order created successfully",
		"id":      order.ID.Hex(),
	})
}
