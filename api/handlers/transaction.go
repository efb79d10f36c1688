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

// Transaction exported for testing purposes
type Transaction struct {
	DB databases.TransactionDatabase
}

// TransactionHandler returns the paginated office ledger, optionally filtered by
// type
func (t Transaction) TransactionHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)

	filter := bson.M{}
	if txType := r.URL.Query().Get("type"); txType != "" {
		filter["type"] = txType
	}

	dbResp, err := t.DB.Find(context.TODO(), filter, &options.FindOptions{Limit: &limit64, Skip: &skip64, Sort: bson.D{{Key: "created_at", Value: -1}}})
	if err != nil {
		config.ErrorStatus("failed to get transactions", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Transaction{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateTransactionHandler records a ledger entry
func (t Transaction) CreateTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var tx models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if tx.Type != models.TransactionTypeIncome && tx.Type != models.TransactionTypeExpense {
		config.ErrorStatus("invalid transaction type", http.StatusBadRequest, w, fmt.Errorf("unknown transaction type: %q", tx.Type))
		return
	}

	tx.ID = primitive.NewObjectID()
	tx.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	_, err := t.DB.InsertOne(context.Background(), tx)
	if err != nil {
		config.ErrorStatus("failed to create transaction", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "transaction created successfully",
		"id":      tx.ID.Hex(),
	})
}

// DeleteTransactionHandler removes a ledger entry
func (t Transaction) DeleteTransactionHandler(w http.ResponseWriter, r *http.Request) {
	txID := mux.Vars(r)["transaction_id"]

	tID, err := primitive.ObjectIDFromHex(txID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	if err := t.DB.DeleteOne(context.Background(), bson.M{"_id": tID}); err != nil {
		config.ErrorStatus("failed to delete transaction", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "transaction deleted successfully",
		"id":      txID,
	})
}
