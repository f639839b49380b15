package creds

import (
	"net"

	"github.com/rackops/fwctl/internal/config"
	"github.com/rackops/fwctl/internal/logger"
	"github.com/rackops/fwctl/internal/protocol"

	"github.com/imdario/mergo"
)

//go:generate mockgen -destination=../mock/creds/mock_creds.go -package=mock_creds . Resolver

// Resolver supplies the credential candidates to try against one host,
// most specific first
type Resolver interface {
	Resolve(host string) []protocol.Credentials
}

// ConfigResolver resolves credentials from the fleet configuration.
// Order of precedence: exact host override, then CIDR range override,
// then the fleet default. Sparse overrides inherit the missing fields
// from the default profile. Every matching profile is returned so
// callers can retry authentication failures with the next candidate.
type ConfigResolver struct {
	log  logger.Logger
	conf *config.Config
}

// NewConfigResolver returns a new ConfigResolver
func NewConfigResolver(conf *config.Config) *ConfigResolver {
	return &ConfigResolver{
		log:  logger.New(),
		conf: conf,
	}
}

// Resolve implements Resolver
func (r *ConfigResolver) Resolve(host string) []protocol.Credentials {
	candidates := []protocol.Credentials{}

	for _, override := range r.conf.HostOverrides {
		if override.Target == host {
			candidates = append(candidates, r.merged(override.Credential))
		}
	}

	ip := net.ParseIP(host)

	if ip != nil {
		for _, override := range r.conf.RangeOverrides {
			_, network, err := net.ParseCIDR(override.Target)

			if err != nil {
				r.log.Warn().
					Str("target", override.Target).
					Msg("skipping unparseable range override")

				continue
			}

			if network.Contains(ip) {
				candidates = append(candidates, r.merged(override.Credential))
			}
		}
	}

	candidates = append(candidates, toCredentials(r.conf.Default))

	return candidates
}

// merged fills the gaps of a sparse override from the default profile
func (r *ConfigResolver) merged(profile config.CredentialProfile) protocol.Credentials {
	merged := profile

	if err := mergo.Merge(&merged, r.conf.Default); err != nil {
		r.log.Error().Err(err).Msg("failed to merge credential profile")
	}

	return toCredentials(merged)
}

func toCredentials(profile config.CredentialProfile) protocol.Credentials {
	return protocol.Credentials{
		Username:   profile.Username,
		Password:   profile.Password,
		PrivateKey: profile.Identity,
		Port:       profile.Port,
	}
}
