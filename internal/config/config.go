package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// telemetry
	HoneycombEnabled      bool   `toml:"honeycomb_enabled"`
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	RunMigrations  bool   `toml:"run_migrations"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`

	// programs
	ProgramCacheSizeMB     int    `toml:"program_cache_size_mb"`
	ProgramCacheTTLSeconds int    `toml:"program_cache_ttl_seconds"`
	DeletePolicy           string `toml:"delete_policy"`

	// scheduled jobs, standard 5-field cron expressions (UTC)
	StreakSweepCron     string `toml:"streak_sweep_cron"`
	SessionsCleanupCron string `toml:"sessions_cleanup_cron"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the toml file at path and returns the section for env,
// validated and with defaults applied.
func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 6
	}
	if c.ProgramCacheSizeMB <= 0 {
		c.ProgramCacheSizeMB = 16
	}
	if c.ProgramCacheTTLSeconds <= 0 {
		c.ProgramCacheTTLSeconds = 300
	}
	if c.DeletePolicy == "" {
		c.DeletePolicy = "legacy"
	}
	if c.StreakSweepCron == "" {
		c.StreakSweepCron = "0 0 * * 1"
	}
	if c.SessionsCleanupCron == "" {
		c.SessionsCleanupCron = "0 */8 * * *"
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 {
		errs = append(errs, errors.New("port must be set"))
	}
	if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
		errs = append(errs, errors.New("postgres host, port and db name must be set"))
	}
	if c.RedisHost == "" || c.RedisPort == "" {
		errs = append(errs, errors.New("redis host and port must be set"))
	}
	switch c.DeletePolicy {
	case "strict", "legacy":
	default:
		errs = append(errs, fmt.Errorf("unknown delete policy: %s", c.DeletePolicy))
	}
	return errors.Join(errs...)
}
