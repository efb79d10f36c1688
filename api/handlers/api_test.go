package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var a App

func executeRequest(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	if expected != actual {
		t.Errorf("Expected response code %d. Got %d\n", expected, actual)
	}
}

func TestUnknownRoute(t *testing.T) {
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/asdf", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusNotFound, response.Code)
}

func TestHealthCheckRoute(t *testing.T) {
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/health", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)

	if !strings.Contains(response.Body.String(), "alive") {
		t.Errorf("Expected 'alive' in the reponse. Got '%s'", response.Body.String())
	}
}

func TestApp_CasesHandlerUnauthorized(t *testing.T) {
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/api/v1/cases", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}

func TestApp_AdminRouteRejectsClerkSession(t *testing.T) {
	a.Router = a.New()
	// A bearer token that is not an admin scoped JWT never reaches the console
	req, _ := http.NewRequest("GET", "/api/v1/admin/pending-requests", nil)
	req.Header.Add("Authorization", "Bearer asdfasdf")
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}

func TestApp_SignupRouteIsPublic(t *testing.T) {
	a.Router = a.New()
	// No session at all still reaches the signup handler; the empty body is the
	// handler's complaint, not the guard's
	req, _ := http.NewRequest("POST", "/api/v1/clerks/signup", strings.NewReader(""))
	response := executeRequest(req)

	checkResponseCode(t, http.StatusBadRequest, response.Code)
}

func TestApp_ApplicationStatusRouteIsPublic(t *testing.T) {
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/api/v1/clerks/application-status", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusBadRequest, response.Code)
}
