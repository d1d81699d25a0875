package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"feastly/globals"
	"feastly/middleware"
	"feastly/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const tokenTTL = 24 * time.Hour

// GetToken exchanges the configured API key for a signed short-lived JWT so
// clients don't have to ship the static key on every request.
func GetToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		APIKey string `json:"apiKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if body.APIKey == "" || globals.APIToken == "" || body.APIKey != globals.APIToken {
		utils.RespondWithError(w, http.StatusUnauthorized, "invalid api key")
		return
	}

	now := time.Now()
	claims := middleware.Claims{
		Client: "feastly-client",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token":      signed,
		"expires_at": claims.ExpiresAt.Unix(),
	})
}
