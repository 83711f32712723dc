package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateServer(t *testing.T) {
	cfg := &Config{}

	err := cfg.ValidateServer()
	assert.ErrorContains(t, err, "DB_PASSWORD")

	cfg.Database.Password = "secret"
	err = cfg.ValidateServer()
	assert.ErrorContains(t, err, "JWT_SECRET_KEY")

	cfg.JWT.Secret = "signing-key"
	assert.NoError(t, cfg.ValidateServer())
}

func TestValidateKiosk(t *testing.T) {
	cfg := &Config{}
	cfg.Kiosk = KioskConfig{
		ScanInterval:   2500 * time.Millisecond,
		RequestTimeout: 5 * time.Second,
	}

	err := cfg.ValidateKiosk()
	assert.ErrorContains(t, err, "KIOSK_CAMERA_URL")

	cfg.Kiosk.CameraStreamURL = "http://camera.local/snapshot.jpg"
	assert.NoError(t, cfg.ValidateKiosk())

	cfg.Kiosk.RequestTimeout = cfg.Kiosk.ScanInterval
	err = cfg.ValidateKiosk()
	assert.ErrorContains(t, err, "KIOSK_REQUEST_TIMEOUT")
}

func TestValidateKiosk_AllowsMissingServerSecrets(t *testing.T) {
	// A kiosk terminal deploys without database credentials or a JWT key;
	// it only talks HTTP to the API server and the camera.
	cfg := &Config{}
	cfg.Kiosk = KioskConfig{
		CameraStreamURL: "http://camera.local/snapshot.jpg",
		ScanInterval:    2500 * time.Millisecond,
		RequestTimeout:  5 * time.Second,
	}
	assert.NoError(t, cfg.ValidateKiosk())
}
