package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// CredentialProfile represents one set of management credentials
type CredentialProfile struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Identity string `yaml:"identity"`
	Port     int    `yaml:"port"`
}

// CredentialOverride assigns a credential profile to a single host
// or to a CIDR range of hosts
type CredentialOverride struct {
	Target     string            `yaml:"target"`
	Credential CredentialProfile `yaml:"credential"`
}

// Protocols represents timing and retry settings for protocol calls
type Protocols struct {
	CallTimeout       time.Duration `yaml:"call_timeout"`
	RetryAttempts     int           `yaml:"retry_attempts"`
	RetryDelay        time.Duration `yaml:"retry_delay"`
	PollInterval      time.Duration `yaml:"poll_interval"`
	PollMaxAttempts   int           `yaml:"poll_max_attempts"`
	DetectionCacheTTL time.Duration `yaml:"detection_cache_ttl"`
}

// Maintenance represents cluster maintenance-mode settings used when
// entering and exiting maintenance around an update
type Maintenance struct {
	EvacuateVMs    bool `yaml:"evacuate_vms"`
	TimeoutMinutes int  `yaml:"timeout_minutes"`
}

// Config represents the data structure of our user provided yaml configuration
type Config struct {
	Fleet          string               `yaml:"fleet"`
	Default        CredentialProfile    `yaml:"default_credential"`
	HostOverrides  []CredentialOverride `yaml:"host_overrides"`
	RangeOverrides []CredentialOverride `yaml:"range_overrides"`
	Protocols      Protocols            `yaml:"protocols"`
	Maintenance    Maintenance          `yaml:"maintenance"`
}

// New returns umarshaled data structure of user provided config
func New(confPath string) (*Config, error) {
	var config Config

	raw, err := os.ReadFile(confPath)

	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, err
	}

	config.fillDefaults()

	return &config, nil
}

// Default returns a config with sane fleet-wide defaults
func Default() *Config {
	user := os.Getenv("USER")

	conf := &Config{
		Fleet: "default",
		Default: CredentialProfile{
			Username: user,
		},
		HostOverrides:  []CredentialOverride{},
		RangeOverrides: []CredentialOverride{},
	}

	conf.fillDefaults()

	return conf
}

// Write persists conf to the config file location shared via viper
func Write(conf Config) error {
	configFile := viper.Get("config-file").(string)

	file, err := os.Create(configFile)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	return encoder.Encode(conf)
}

func (c *Config) fillDefaults() {
	if c.Protocols.CallTimeout == 0 {
		c.Protocols.CallTimeout = 30 * time.Second
	}

	if c.Protocols.RetryAttempts == 0 {
		c.Protocols.RetryAttempts = 3
	}

	if c.Protocols.RetryDelay == 0 {
		c.Protocols.RetryDelay = 10 * time.Second
	}

	if c.Protocols.PollInterval == 0 {
		c.Protocols.PollInterval = 15 * time.Second
	}

	if c.Protocols.PollMaxAttempts == 0 {
		c.Protocols.PollMaxAttempts = 120
	}

	if c.Protocols.DetectionCacheTTL == 0 {
		c.Protocols.DetectionCacheTTL = 5 * time.Minute
	}

	if c.Maintenance.TimeoutMinutes == 0 {
		c.Maintenance.TimeoutMinutes = 90
	}
}
