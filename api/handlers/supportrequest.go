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

// SupportRequest exported for testing purposes
type SupportRequest struct {
	DB       databases.SupportRequestDatabase
	Notifier *Notifier
}

// CreateSupportRequestHandler files a support ticket. New tickets always open in
// Open with whatever priority the form selected.
func (s SupportRequest) CreateSupportRequestHandler(w http.ResponseWriter, r *http.Request) {
	var ticket models.SupportRequest
	if err := json.NewDecoder(r.Body).Decode(&ticket); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if ticket.UserEmail == "" || ticket.Subject == "" || ticket.Message == "" {
		config.ErrorStatus("missing required fields", http.StatusBadRequest, w, fmt.Errorf("user_email, subject and message are required"))
		return
	}
	if ticket.Priority == "" {
		ticket.Priority = models.SupportPriorityMedium
	}

	ticket.ID = primitive.NewObjectID()
	ticket.Status = models.SupportStatusOpen
	ticket.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	_, err := s.DB.InsertOne(context.Background(), ticket)
	if err != nil {
		config.ErrorStatus("failed to create support ticket", http.StatusInternalServerError, w, err)
		return
	}

	if s.Notifier != nil {
		s.Notifier.Broadcast("new_support_ticket", map[string]string{
			"id":       ticket.ID.Hex(),
			"subject":  ticket.Subject,
			"priority": ticket.Priority,
		})
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "support ticket created successfully",
		"id":      ticket.ID.Hex(),
	})
}

// SupportRequestsByEmailHandler returns the tickets raised by one clerk
func (s SupportRequest) SupportRequestsByEmailHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		config.ErrorStatus("email is required", http.StatusBadRequest, w, fmt.Errorf("missing email query parameter"))
		return
	}

	dbResp, err := s.DB.Find(context.TODO(), bson.M{"user_email": email}, &options.FindOptions{Sort: bson.D{{Key: "created_at", Value: -1}}})
	if err != nil {
		config.ErrorStatus("failed to get support tickets", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.SupportRequest{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
