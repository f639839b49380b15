package creds_test

import (
	"testing"

	"github.com/rackops/fwctl/internal/config"
	"github.com/rackops/fwctl/internal/creds"

	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	conf := config.Default()

	conf.Default = config.CredentialProfile{
		Username: "fleet-admin",
		Password: "fleet-secret",
		Port:     443,
	}

	conf.HostOverrides = []config.CredentialOverride{
		{
			Target: "10.0.1.5",
			Credential: config.CredentialProfile{
				Username: "host-admin",
				Password: "host-secret",
			},
		},
	}

	conf.RangeOverrides = []config.CredentialOverride{
		{
			Target: "10.0.2.0/24",
			Credential: config.CredentialProfile{
				Password: "rack2-secret",
			},
		},
	}

	return conf
}

func TestConfigResolver(t *testing.T) {
	t.Run("host override wins and default follows as fallback", func(st *testing.T) {
		resolver := creds.NewConfigResolver(testConfig())

		candidates := resolver.Resolve("10.0.1.5")

		assert.Len(st, candidates, 2)
		assert.Equal(st, "host-admin", candidates[0].Username)
		assert.Equal(st, "fleet-admin", candidates[1].Username)
	})

	t.Run("range override applies to hosts inside the cidr", func(st *testing.T) {
		resolver := creds.NewConfigResolver(testConfig())

		candidates := resolver.Resolve("10.0.2.17")

		assert.Len(st, candidates, 2)
		assert.Equal(st, "rack2-secret", candidates[0].Password)
	})

	t.Run("sparse overrides inherit missing fields from the default", func(st *testing.T) {
		resolver := creds.NewConfigResolver(testConfig())

		candidates := resolver.Resolve("10.0.2.17")

		assert.Equal(st, "fleet-admin", candidates[0].Username)
		assert.Equal(st, 443, candidates[0].Port)
	})

	t.Run("unmatched host falls back to the default alone", func(st *testing.T) {
		resolver := creds.NewConfigResolver(testConfig())

		candidates := resolver.Resolve("192.168.9.9")

		assert.Len(st, candidates, 1)
		assert.Equal(st, "fleet-admin", candidates[0].Username)
	})

	t.Run("hostnames skip range matching without panicking", func(st *testing.T) {
		resolver := creds.NewConfigResolver(testConfig())

		candidates := resolver.Resolve("bmc-rack2-07.mgmt.local")

		assert.Len(st, candidates, 1)
	})
}
