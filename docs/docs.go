// Package docs Kurup & Associates Legal Office API.
//
// Documentation of the legal office case management API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - basic
//
//    SecurityDefinitions:
//    basic:
//      type: basic
//
// swagger:meta
package docs

import (
	"github.com/kurup-associates/legal-office-api/models"
)

// swagger:route GET /api/v1/cases cases listCases
// Returns the paginated case register.
// responses:
//   200: caseRecordsResponse

// Case records returned to the register page
// swagger:response caseRecordsResponse
type caseRecordsResponseWrapper struct {
	// in:body
	Body []models.CaseRecord
}

// swagger:route GET /api/v1/societies societies listSocieties
// Returns per-society case counts.
// responses:
//   200: societyStatsResponse

// Derived society statistics
// swagger:response societyStatsResponse
type societyStatsResponseWrapper struct {
	// in:body
	Body []models.SocietyStats
}

// swagger:route GET /health health healthCheck
// Returns the service liveness flag.
// responses:
//   200: healthCheckResponse

// Liveness response
// swagger:response healthCheckResponse
type healthCheckResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}
