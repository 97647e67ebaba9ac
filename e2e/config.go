package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_API_BASE_URL points at a running collaborator; empty skips the suite.
	APIBaseURL string `envconfig:"E2E_API_BASE_URL"`
	SocketURL  string `envconfig:"E2E_SOCKET_URL"`
	// E2E_TOKEN is a valid bearer token for an existing account.
	Token string `envconfig:"E2E_TOKEN"`
	// E2E_PEER_ID is a user id the account already has a conversation with.
	PeerID         string `envconfig:"E2E_PEER_ID"`
	RequestTimeout int    `envconfig:"E2E_REQUEST_TIMEOUT_SECONDS" default:"10"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
