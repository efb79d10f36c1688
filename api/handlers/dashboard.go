package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/kurup-associates/legal-office-api/api"
	"github.com/kurup-associates/legal-office-api/config"
	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/models"
)

// upcomingHearingDays mirrors the hearing digest reminder window
const upcomingHearingDays = 14

// Dashboard exported for testing purposes
type Dashboard struct {
	Cases         databases.CaseRecordDatabase
	InterimOrders databases.InterimOrderDatabase
	Judgments     databases.JudgmentDatabase
}

// DashboardMetrics is the landing page counter block
type DashboardMetrics struct {
	ActiveCases      int64 `json:"active_cases"`
	Societies        int64 `json:"societies"`
	UpcomingHearings int64 `json:"upcoming_hearings"`
	Judgments        int64 `json:"judgments"`
}

// MetricsHandler returns the four dashboard counters. Each count is independent:
// a failing query logs and reports zero without taking the others down.
func (d Dashboard) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	metrics := DashboardMetrics{}

	count, err := d.Cases.CountDocuments(ctx, bson.M{
		"status": bson.M{"$nin": []string{models.CaseStatusClosed, models.CaseStatusArchived}},
	})
	if err != nil {
		zap.S().Errorw("failed to count active cases", "error", err)
	} else {
		metrics.ActiveCases = count
	}

	cases, err := d.Cases.Find(ctx, bson.D{})
	if err != nil {
		zap.S().Errorw("failed to get cases for society count", "error", err)
	} else {
		metrics.Societies = int64(len(AggregateSocieties(cases)))
	}

	count, err = d.InterimOrders.CountDocuments(ctx, databases.NextDateWindow(time.Now().UTC(), upcomingHearingDays))
	if err != nil {
		zap.S().Errorw("failed to count upcoming hearings", "error", err)
	} else {
		metrics.UpcomingHearings = count
	}

	count, err = d.Judgments.CountDocuments(ctx, bson.D{})
	if err != nil {
		zap.S().Errorw("failed to count judgments", "error", err)
	} else {
		metrics.Judgments = count
	}

	b, err := json.Marshal(metrics)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
