package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kurup-associates/legal-office-api/config"
	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/models"
	templates "github.com/kurup-associates/legal-office-api/templates/html"
)

// Admin exported for testing purposes
type Admin struct {
	DB       databases.AdminDatabase
	ResetDB  databases.AdminResetDatabase
	SDB      databases.SupportRequestDatabase
	Config   config.Config
	Notifier *Notifier
}

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginHandler exchanges admin credentials for an admin scoped token. Unlike
// the clerk login, bad credentials here are an HTTP 401.
func (a Admin) AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	admin, err := a.DB.FindOne(context.TODO(), bson.M{"email": req.Email, "active": true})
	if err != nil {
		config.ErrorStatus("invalid credentials", http.StatusUnauthorized, w, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		config.ErrorStatus("invalid credentials", http.StatusUnauthorized, w, err)
		return
	}

	token, err := newScopedToken("admin", admin.Email, admin.ID.Hex())
	if err != nil {
		config.ErrorStatus("failed to sign session token", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"id":    admin.ID.Hex(),
		"email": admin.Email,
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPasswordHandler issues a one hour reset token and emails the reset link.
// The response is the same whether or not the email matched an admin, so the route
// cannot be used to probe for accounts.
func (a Admin) ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	acknowledge := func() {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "if the email matches an admin account, a reset link has been sent",
		})
	}

	admin, err := a.DB.FindOne(context.TODO(), bson.M{"email": req.Email, "active": true})
	if err != nil {
		zap.S().Debugw("password reset for unknown admin email", "email", req.Email)
		acknowledge()
		return
	}

	rawToken := uuid.New().String()
	sum := sha256.Sum256([]byte(rawToken))

	now := time.Now()
	reset := models.AdminPasswordReset{
		AdminID:   admin.ID,
		TokenHash: hex.EncodeToString(sum[:]),
		ExpiresAt: primitive.NewDateTimeFromTime(now.Add(time.Hour)),
		CreatedAt: primitive.NewDateTimeFromTime(now),
	}
	if _, err := a.ResetDB.InsertOne(context.TODO(), reset); err != nil {
		config.ErrorStatus("failed to create reset token", http.StatusInternalServerError, w, err)
		return
	}

	resetURL := fmt.Sprintf("%s/admin/reset-password?token=%s", a.Config.BaseURL, rawToken)
	htmlContent, plainText := templates.RenderAdminPasswordResetEmail(resetURL)
	go sendOfficeEmail(admin.Email, admin.Email, "Admin Password Reset", htmlContent, plainText)

	acknowledge()
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ResetPasswordHandler consumes a reset token and sets the new admin password
func (a Admin) ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Token == "" || req.Password == "" {
		config.ErrorStatus("token and password are required", http.StatusBadRequest, w, fmt.Errorf("missing token or password"))
		return
	}

	sum := sha256.Sum256([]byte(req.Token))
	reset, err := a.ResetDB.FindOne(context.TODO(), bson.M{
		"tokenHash": hex.EncodeToString(sum[:]),
		"usedAt":    bson.M{"$exists": false},
		"expiresAt": bson.M{"$gt": primitive.NewDateTimeFromTime(time.Now())},
	})
	if err != nil {
		config.ErrorStatus("invalid or expired reset token", http.StatusUnauthorized, w, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	_, err = a.DB.UpdateOne(context.TODO(),
		bson.M{"_id": reset.AdminID},
		bson.M{"$set": bson.M{"passwordHash": string(hashed), "updatedAt": now}},
	)
	if err != nil {
		config.ErrorStatus("failed to update admin password", http.StatusInternalServerError, w, err)
		return
	}

	_, err = a.ResetDB.UpdateOne(context.TODO(),
		bson.M{"_id": reset.ID},
		bson.M{"$set": bson.M{"usedAt": now}},
	)
	if err != nil {
		zap.S().Warnw("failed to mark reset token as used", "error", err, "reset", reset.ID.Hex())
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "password updated"})
}

// GetAllSupportTicketsHandler returns every support ticket for the console
func (a Admin) GetAllSupportTicketsHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := a.SDB.Find(context.TODO(), bson.M{})
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

type ticketStatusRequest struct {
	Status string `json:"status"`
}

// UpdateSupportStatusHandler sets a ticket's status. Any of the known statuses can
// follow any other; a closed ticket may be reopened.
func (a Admin) UpdateSupportStatusHandler(w http.ResponseWriter, r *http.Request) {
	ticketID := mux.Vars(r)["ticket_id"]

	tID, err := primitive.ObjectIDFromHex(ticketID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var req ticketStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	switch req.Status {
	case models.SupportStatusOpen, models.SupportStatusInProgress, models.SupportStatusResolved, models.SupportStatusClosed:
	default:
		config.ErrorStatus("invalid status", http.StatusBadRequest, w, fmt.Errorf("unknown ticket status: %q", req.Status))
		return
	}

	_, err = a.SDB.UpdateOne(context.TODO(),
		bson.M{"_id": tID},
		bson.M{"$set": bson.M{"status": req.Status}},
	)
	if err != nil {
		config.ErrorStatus("failed to update ticket status", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "ticket status updated",
		"id":      ticketID,
		"status":  req.Status,
	})
}

type ticketReplyRequest struct {
	Response string `json:"response"`
}

// AdminReplyToTicketHandler stores the admin response on a ticket and emails the
// clerk who raised it
func (a Admin) AdminReplyToTicketHandler(w http.ResponseWriter, r *http.Request) {
	ticketID := mux.Vars(r)["ticket_id"]

	tID, err := primitive.ObjectIDFromHex(ticketID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var req ticketReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Response == "" {
		config.ErrorStatus("response is required", http.StatusBadRequest, w, fmt.Errorf("empty response"))
		return
	}

	ticket, err := a.SDB.FindOne(context.TODO(), bson.M{"_id": tID})
	if err != nil {
		config.ErrorStatus("failed to get ticket by ID", http.StatusNotFound, w, err)
		return
	}

	// Replying and status changes are independent operations; the reply never
	// touches status.
	_, err = a.SDB.UpdateOne(context.TODO(),
		bson.M{"_id": tID},
		bson.M{"$set": bson.M{"admin_response": req.Response}},
	)
	if err != nil {
		config.ErrorStatus("failed to update ticket", http.StatusInternalServerError, w, err)
		return
	}

	htmlContent, plainText := templates.RenderTicketReplyEmail(ticket.Subject, req.Response)
	go sendOfficeEmail(ticket.UserEmail, "", "Support Ticket Update", htmlContent, plainText)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "reply recorded",
		"id":      ticketID,
	})
}
