package config_test

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/rackops/fwctl/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Run("loads yaml config and fills defaults", func(st *testing.T) {
		confPath := path.Join(st.TempDir(), "config.yml")

		raw := `
fleet: lab
default_credential:
  username: root
  password: calvin
host_overrides:
  - target: 10.0.0.50
    credential:
      username: admin
      password: secret
protocols:
  retry_attempts: 5
`
		err := os.WriteFile(confPath, []byte(raw), 0644)
		assert.NoError(st, err)

		conf, err := config.New(confPath)

		assert.NoError(st, err)
		assert.Equal(st, "lab", conf.Fleet)
		assert.Equal(st, "root", conf.Default.Username)
		assert.Equal(st, 1, len(conf.HostOverrides))
		assert.Equal(st, "10.0.0.50", conf.HostOverrides[0].Target)
		assert.Equal(st, 5, conf.Protocols.RetryAttempts)

		// unset values come back as defaults
		assert.Equal(st, 30*time.Second, conf.Protocols.CallTimeout)
		assert.Equal(st, 10*time.Second, conf.Protocols.RetryDelay)
		assert.Equal(st, 120, conf.Protocols.PollMaxAttempts)
		assert.Equal(st, 90, conf.Maintenance.TimeoutMinutes)
	})

	t.Run("errors on missing file", func(st *testing.T) {
		_, err := config.New(path.Join(st.TempDir(), "nope.yml"))

		assert.Error(st, err)
	})

	t.Run("default config is usable", func(st *testing.T) {
		conf := config.Default()

		assert.Equal(st, "default", conf.Fleet)
		assert.Equal(st, 3, conf.Protocols.RetryAttempts)
		assert.Equal(st, 5*time.Minute, conf.Protocols.DetectionCacheTTL)
	})
}
