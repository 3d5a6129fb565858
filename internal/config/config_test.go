package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := setEnv("CAA_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := setEnv("CAA_JWT_PRIVATE_KEY", "private2.key")
	defer clear2()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal("public.pem", cfg.JWT.PublicKey)
	a.Equal("private2.key", cfg.JWT.PrivateKey)

	// file value overrides the default; unset keys keep their defaults
	a.Equal(7, cfg.Game.TargetScore)
	a.Equal(7, cfg.Game.HandSize)
	a.Equal(3, cfg.Game.MinPlayers)

	// ensure that it's only loaded once
	_ = os.Setenv("CAA_JWT_PRIVATE_KEY", "private3.key")
	// ensure we aren't using a pointer
	cfg.JWT.PrivateKey = "bad"
	cfg = Instance()
	a.Equal("private2.key", cfg.JWT.PrivateKey)
}

func TestDefaults(t *testing.T) {
	clear := setEnv("CAA_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	config = Config{}

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 5, cfg.Game.TargetScore)
	assert.Equal(t, ".keys/private.key", cfg.JWT.PrivateKey)
}

func setEnv(key, val string) func() {
	orig := os.Getenv(key)
	_ = os.Setenv(key, val)
	return func() {
		if orig == "" {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, orig)
		}
	}
}
