package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kurup-associates/legal-office-api/config"
	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/models"
)

// Society exported for testing purposes
type Society struct {
	DB databases.CaseRecordDatabase
}

// SocietyStatsHandler returns per-society case counts derived from the case
// register
func (s Society) SocietyStatsHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := s.DB.Find(context.TODO(), bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusNotFound, w, err)
		return
	}

	stats := AggregateSocieties(dbResp)

	b, err := json.Marshal(stats)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// AggregateSocieties reduces the case register to per-society counts. Society
// names are trimmed before grouping, blank names are dropped, and the result is
// sorted alphabetically. Matching is case sensitive: "Green Park" and
// "green park" are two societies.
func AggregateSocieties(cases []models.CaseRecord) []models.SocietyStats {
	counts := make(map[string]int)
	for _, c := range cases {
		name := strings.TrimSpace(c.Society)
		if name == "" {
			continue
		}
		counts[name]++
	}

	stats := make([]models.SocietyStats, 0, len(counts))
	for name, count := range counts {
		stats = append(stats, models.SocietyStats{Name: name, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats
}
