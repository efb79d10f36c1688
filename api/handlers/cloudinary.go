package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"

	"github.com/kurup-associates/legal-office-api/config"
)

// CloudinaryHandler handles Cloudinary related requests
type CloudinaryHandler struct{}

// GenerateSignature signs an upload request so the browser can push judgment
// documents straight to Cloudinary without the API secret ever leaving the server
func (c CloudinaryHandler) GenerateSignature(w http.ResponseWriter, r *http.Request) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	uploadPreset := os.Getenv("CLOUDINARY_UPLOAD_PRESET")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	params := url.Values{}
	params.Set("timestamp", timestamp)
	params.Set("upload_preset", uploadPreset)

	signature, err := api.SignParameters(params, apiSecret)
	if err != nil {
		config.ErrorStatus("failed to sign upload parameters", http.StatusInternalServerError, w, err)
		return
	}

	response := map[string]string{
		"timestamp": timestamp,
		"signature": signature,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
