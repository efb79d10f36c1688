package handlers

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kurup-associates/legal-office-api/config"
	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/models"
)

// Report exported for testing purposes
type Report struct {
	DB databases.CaseRecordDatabase
}

var caseListReportTmpl = template.Must(template.New("caseListReport").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Case Register</title>
  <style>
    body { font-family: Georgia, 'Times New Roman', serif; margin: 40px; color: #1a1a1a; }
    h1 { font-size: 20px; border-bottom: 2px solid #1a2a4f; padding-bottom: 8px; }
    table { border-collapse: collapse; width: 100%; margin-top: 16px; }
    th, td { border: 1px solid #9ca3af; padding: 6px 10px; font-size: 13px; text-align: left; }
    th { background: #eef0f5; }
    .meta { color: #6b7280; font-size: 12px; }
    @media print { body { margin: 10mm; } }
  </style>
</head>
<body>
  <h1>Kurup &amp; Associates — Case Register</h1>
  <p class="meta">Generated {{.GeneratedAt}} — {{len .Cases}} case(s)</p>
  <table>
    <tr><th>Case No</th><th>Year</th><th>Case Type</th><th>Party</th><th>Society</th><th>Lawyer</th><th>Status</th></tr>
    {{range .Cases}}
    <tr>
      <td>{{.CaseNo}}</td><td>{{.CaseYear}}</td><td>{{.CaseName}}</td>
      <td>{{.Name}}</td><td>{{.Society}}</td><td>{{.Lawyer}}</td><td>{{.Status}}</td>
    </tr>
    {{end}}
  </table>
</body>
</html>`))

var caseDetailReportTmpl = template.Must(template.New("caseDetailReport").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Case {{.Case.CaseNo}}/{{.Case.CaseYear}}</title>
  <style>
    body { font-family: Georgia, 'Times New Roman', serif; margin: 40px; color: #1a1a1a; }
    h1 { font-size: 20px; border-bottom: 2px solid #1a2a4f; padding-bottom: 8px; }
    dl { margin-top: 16px; }
    dt { font-weight: bold; margin-top: 10px; }
    dd { margin: 2px 0 0 0; }
    .meta { color: #6b7280; font-size: 12px; }
    @media print { body { margin: 10mm; } }
  </style>
</head>
<body>
  <h1>Kurup &amp; Associates — Case {{.Case.CaseNo}}/{{.Case.CaseYear}}</h1>
  <p class="meta">Generated {{.GeneratedAt}}</p>
  <dl>
    <dt>Case Type</dt><dd>{{.Case.CaseName}}</dd>
    <dt>Party</dt><dd>{{.Case.Name}}</dd>
    <dt>Society</dt><dd>{{.Case.Society}}</dd>
    <dt>Lawyer</dt><dd>{{.Case.Lawyer}}</dd>
    <dt>Appearing For</dt><dd>{{.Case.Represents}}</dd>
    <dt>Status</dt><dd>{{.Case.Status}}</dd>
  </dl>
</body>
</html>`))

// CaseListReportHandler renders the full case register as printable HTML
func (rep Report) CaseListReportHandler(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if society := r.URL.Query().Get("society"); society != "" {
		filter["society"] = society
	}

	dbResp, err := rep.DB.Find(context.TODO(), filter)
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.CaseRecord{}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = caseListReportTmpl.Execute(w, struct {
		GeneratedAt string
		Cases       []models.CaseRecord
	}{
		GeneratedAt: time.Now().Format("02 Jan 2006 15:04"),
		Cases:       dbResp,
	})
	if err != nil {
		config.ErrorStatus("failed to render report", http.StatusInternalServerError, w, err)
	}
}

// CaseDetailReportHandler renders one case as printable HTML
func (rep Report) CaseDetailReportHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := rep.DB.FindOne(context.Background(), bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = caseDetailReportTmpl.Execute(w, struct {
		GeneratedAt string
		Case        *models.CaseRecord
	}{
		GeneratedAt: time.Now().Format("02 Jan 2006 15:04"),
		Case:        dbResp,
	})
	if err != nil {
		config.ErrorStatus("failed to render report", http.StatusInternalServerError, w, err)
	}
}
