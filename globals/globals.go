package globals

import (
	"context"
	"os"
)

var (
	JwtSecret []byte
	APIToken  string
)

// Context keys
type ContextKey string

const ClientKey ContextKey = "client"

var Ctx = context.Background()

// LoadSecrets pulls auth material from the environment. Called once from
// main after the .env file has been loaded.
func LoadSecrets() {
	JwtSecret = []byte(os.Getenv("JWT_SECRET"))
	APIToken = os.Getenv("API_TOKEN")
}
