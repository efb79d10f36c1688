package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
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

// Clerk exported for testing purposes
type Clerk struct {
	DB       databases.ClerkUserDatabase
	Notifier *Notifier
}

// clerkSignupRequest is the signup form payload. ConfirmPassword is checked
// server side before anything touches the database.
type clerkSignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FullName        string `json:"full_name"`
	PhoneNumber     string `json:"phone_number"`
	Department      string `json:"department"`
	Designation     string `json:"designation"`
}

// SignupHandler registers a new clerk application. The account lands in
// application_submitted and stays unusable until an admin approves it.
func (c Clerk) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req clerkSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	// Mismatched passwords fail before any database work
	if req.Password != req.ConfirmPassword {
		config.ErrorStatus("passwords do not match", http.StatusBadRequest, w, fmt.Errorf("passwords do not match"))
		return
	}
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		config.ErrorStatus("missing required fields", http.StatusBadRequest, w, fmt.Errorf("email, password and full name are required"))
		return
	}

	existing, err := c.DB.FindOne(context.TODO(), bson.M{"email": req.Email})
	if err == nil && existing != nil {
		config.ErrorStatus("an account with this email already exists", http.StatusConflict, w, fmt.Errorf("duplicate email: %s", req.Email))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	clerk := models.ClerkUser{
		ID:          uuid.New().String(),
		Email:       req.Email,
		Password:    string(hashed),
		FullName:    req.FullName,
		EmployeeID:  newEmployeeID(),
		PhoneNumber: req.PhoneNumber,
		Department:  req.Department,
		Designation: req.Designation,
		Status:      models.ClerkStatusApplicationSubmitted,
		Role:        "clerk",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = c.DB.InsertOne(context.TODO(), clerk)
	if err != nil {
		config.ErrorStatus("failed to create clerk account", http.StatusInternalServerError, w, err)
		return
	}

	htmlContent, plainText := templates.RenderApplicationSubmittedEmail(clerk.FullName, clerk.EmployeeID)
	go sendOfficeEmail(clerk.Email, clerk.FullName, "Application Received", htmlContent, plainText)

	if c.Notifier != nil {
		c.Notifier.Broadcast("new_application", map[string]string{
			"email":     clerk.Email,
			"full_name": clerk.FullName,
		})
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":     "application submitted, awaiting admin approval",
		"id":          clerk.ID,
		"employee_id": clerk.EmployeeID,
	})
}

// ApplicationStatusHandler returns the application status for an email. A missing
// application returns a null status, not an error, so the status page can render
// its not-found state.
func (c Clerk) ApplicationStatusHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		config.ErrorStatus("email is required", http.StatusBadRequest, w, fmt.Errorf("missing email query parameter"))
		return
	}

	zap.S().Debugf("application status lookup for: %v", email)

	resp := models.ApplicationStatusResponse{}
	clerk, err := c.DB.FindOne(context.TODO(), bson.M{"email": email})
	if err == nil && clerk != nil {
		resp.Status = &clerk.Status
	}

	b, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// clerkLoginRequest is the fallback login payload
type clerkLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ClerkLoginHandler is the fallback credential check. It answers HTTP 200 for
// every reachable outcome and reports failures through the success flag, so the
// login form renders the message instead of an error page.
func (c Clerk) ClerkLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req clerkLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	writeLoginResponse := func(resp models.ClerkLoginResponse) {
		b, err := json.Marshal(resp)
		if err != nil {
			config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}

	clerk, err := c.DB.FindOne(context.TODO(), bson.M{"email": req.Email})
	if err != nil || clerk == nil {
		writeLoginResponse(models.ClerkLoginResponse{Success: false, Message: "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(clerk.Password), []byte(req.Password)); err != nil {
		writeLoginResponse(models.ClerkLoginResponse{Success: false, Message: "Invalid email or password"})
		return
	}

	switch clerk.Status {
	case models.ClerkStatusApproved, models.ClerkStatusActive:
		// fall through to issue a session
	case models.ClerkStatusApplicationSubmitted:
		writeLoginResponse(models.ClerkLoginResponse{Success: false, Message: "Your application is still pending approval"})
		return
	default:
		writeLoginResponse(models.ClerkLoginResponse{Success: false, Message: "Your account is not active. Please contact the administrator"})
		return
	}

	token, err := newScopedToken("clerk", clerk.Email, clerk.ID)
	if err != nil {
		config.ErrorStatus("failed to sign session token", http.StatusInternalServerError, w, err)
		return
	}

	_, err = c.DB.UpdateOne(context.TODO(),
		bson.M{"_id": clerk.ID},
		bson.M{"$set": bson.M{"last_login": primitive.NewDateTimeFromTime(time.Now())}},
	)
	if err != nil {
		zap.S().Warnw("failed to record last login", "error", err, "clerk", clerk.ID)
	}

	writeLoginResponse(models.ClerkLoginResponse{Success: true, User: clerk, Token: token})
}

// PendingRequestsHandler returns all clerk applications awaiting a decision
func (c Clerk) PendingRequestsHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := c.DB.Find(context.TODO(), bson.M{"status": models.ClerkStatusApplicationSubmitted})
	if err != nil {
		config.ErrorStatus("failed to get pending requests", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.ClerkUser{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ActiveClerksHandler returns all clerks that can currently sign in
func (c Clerk) ActiveClerksHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := c.DB.Find(context.TODO(), bson.M{
		"status": bson.M{"$in": []string{models.ClerkStatusApproved, models.ClerkStatusActive}},
	})
	if err != nil {
		config.ErrorStatus("failed to get active clerks", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.ClerkUser{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// clerkStatusRequest carries the new status for a clerk account
type clerkStatusRequest struct {
	Status string `json:"status"`
}

// UpdateClerkStatusHandler sets a clerk's account status. Approve and reject are
// the same operation with different target statuses; a decision on a pending
// application also sends the decision email.
func (c Clerk) UpdateClerkStatusHandler(w http.ResponseWriter, r *http.Request) {
	clerkID := mux.Vars(r)["clerk_id"]

	var req clerkStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	switch req.Status {
	case models.ClerkStatusApproved, models.ClerkStatusActive, models.ClerkStatusInactive, models.ClerkStatusSuspended:
	default:
		config.ErrorStatus("invalid status", http.StatusBadRequest, w, fmt.Errorf("unknown clerk status: %q", req.Status))
		return
	}

	clerk, err := c.DB.FindOne(context.TODO(), bson.M{"_id": clerkID})
	if err != nil {
		config.ErrorStatus("failed to get clerk by ID", http.StatusNotFound, w, err)
		return
	}

	_, err = c.DB.UpdateOne(context.TODO(),
		bson.M{"_id": clerkID},
		bson.M{"$set": bson.M{
			"status":     req.Status,
			"updated_at": primitive.NewDateTimeFromTime(time.Now()),
		}},
	)
	if err != nil {
		config.ErrorStatus("failed to update clerk status", http.StatusInternalServerError, w, err)
		return
	}

	// A decision on a fresh application is worth an email either way
	if clerk.Status == models.ClerkStatusApplicationSubmitted {
		htmlContent, plainText := templates.RenderApplicationDecisionEmail(clerk.FullName, req.Status)
		subject := "Application Update"
		if req.Status == models.ClerkStatusApproved {
			subject = "Application Approved"
		}
		go sendOfficeEmail(clerk.Email, clerk.FullName, subject, htmlContent, plainText)
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "clerk status updated",
		"id":      clerkID,
		"status":  req.Status,
	})
}

// newEmployeeID generates an office employee reference like EMP-48201
func newEmployeeID() string {
	return fmt.Sprintf("EMP-%05d", rand.Intn(100000))
}

// newScopedToken signs a short HS256 JWT carrying the session scope
func newScopedToken(scope, email, subject string) (string, error) {
	claims := jwt.MapClaims{
		"scope": scope,
		"email": email,
		"sub":   subject,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
