package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/basic"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/models"
)

// MiddlewareDB is a struct that holds the clerk user database used to validate
// hosted-session credentials
type MiddlewareDB struct {
	DB databases.ClerkUserDatabase
}

var authenticator auth.Authenticator
var cache store.Cache

// Middleware guards the protected routes. The hosted guardian session is consulted
// first; when it yields nothing the clerk fallback JWT is accepted. No session of
// either kind fails closed with a 401.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user, err := authenticator.Authenticate(r)
		if err == nil {
			zap.S().Debugf("user %s authenticated via hosted session", user.UserName())
			next.ServeHTTP(w, r)
			return
		}
		if claims, jwtErr := parseScopedToken(r, "clerk"); jwtErr == nil {
			zap.S().Debugf("user %v authenticated via fallback session", claims["email"])
			next.ServeHTTP(w, r)
			return
		}
		zap.S().Errorw("unauthorized",
			"url", r.URL)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "unauthorized"}`))
	})
}

// PublicOnly wraps the login, signup and application status routes. An active
// hosted session is bounced back to the dashboard root. The clerk fallback JWT is
// intentionally not consulted here, so a fallback-only user still reaches the
// public pages.
func PublicOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := authenticator.Authenticate(r); err == nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminOnly guards the admin console routes against anything but an admin scoped
// JWT. The shared clerk guard never applies here.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := parseScopedToken(r, "admin"); err != nil {
			zap.S().Errorw("admin unauthorized",
				"url", r.URL)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// parseScopedToken validates the bearer JWT on the request and checks its scope
// claim. Both the clerk fallback session and the admin marker travel this way.
func parseScopedToken(r *http.Request, scope string) (jwt.MapClaims, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, fmt.Errorf("no bearer token")
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["scope"] != scope {
		return nil, fmt.Errorf("wrong token scope")
	}
	return claims, nil
}

// CreateToken exchanges basic credentials for a hosted session token
func (m MiddlewareDB) CreateToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	email, _, ok := r.BasicAuth()
	if !ok {
		http.Error(w, "basic auth failed", http.StatusUnauthorized)
		return
	}

	// Fetch clerk details from the database
	clerk, err := m.DB.FindOne(context.Background(), bson.M{"email": email})
	if err != nil {
		http.Error(w, "failed to get clerk by email", http.StatusUnauthorized)
		return
	}

	token := uuid.New().String()
	authUser := auth.NewDefaultUser(email, clerk.ID, nil, nil)
	tokenStrategy := authenticator.Strategy(bearer.CachedStrategyKey)
	auth.Append(tokenStrategy, token, authUser, r)

	response := map[string]string{
		"token": token,
		"id":    clerk.ID,
	}

	responseBody, err := json.Marshal(response)
	if err != nil {
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	w.Write(responseBody)
}

// SetupGoGuardian sets up the go-guardian middleware
func (m MiddlewareDB) SetupGoGuardian() {
	authenticator = auth.New()
	cache = store.NewFIFO(context.Background(), time.Hour*24*365*100) // 100 years ttl
	basicStrategy := basic.New(m.ValidateUser, cache)
	tokenStrategy := bearer.New(bearer.NoOpAuthenticate, cache)

	authenticator.EnableStrategy(basic.StrategyKey, basicStrategy)
	authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
}

// ValidateUser validates a clerk's hosted-session credentials. Only approved or
// active clerks are provisioned in the identity service.
func (m MiddlewareDB) ValidateUser(ctx context.Context, r *http.Request, email, password string) (auth.Info, error) {
	clerk, err := m.DB.FindOne(context.Background(), bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("no matching email found")
	}

	if clerk.Status != models.ClerkStatusApproved && clerk.Status != models.ClerkStatusActive {
		return nil, fmt.Errorf("clerk is not approved")
	}

	err = bcrypt.CompareHashAndPassword([]byte(clerk.Password), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("failed to compare password")
	}

	return auth.NewDefaultUser(email, clerk.ID, nil, nil), nil
}

// RevokeToken revokes a hosted session token
func RevokeToken(w http.ResponseWriter, r *http.Request) {
	reqToken := r.Header.Get("Authorization")
	splitToken := strings.Split(reqToken, "Bearer ")
	if len(splitToken) < 2 {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "no token provided"}`))
		return
	}
	reqToken = splitToken[1]

	tokenStrategy := authenticator.Strategy(bearer.CachedStrategyKey)
	auth.Revoke(tokenStrategy, reqToken, r)
	body := fmt.Sprintf(`{"revoked token": "%s"}`, reqToken)
	w.Write([]byte(body))
}
