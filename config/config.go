package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultStateTTL           = 30 * time.Minute
	defaultFlowTTL            = 10 * time.Minute
	defaultSettleDelay        = 2 * time.Second
	defaultSessionTTL         = 14 * 24 * time.Hour
	defaultCookieName         = "firelink_sid"
	defaultMaxPasswordRetry   = 3
	defaultRedisKeyPrefix     = "firelink"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Postgres backs the optional link audit trail
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for the identity platform
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Redis holds the per-session redirect state
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	State *StateConfig `json:"state" yaml:"state"`

	// Link tunes the account-linking flow
	Link *LinkConfig `json:"link" yaml:"link"`

	// Providers holds one OAuth client per federated provider, keyed by provider name
	Providers map[string]*ProviderConfig `json:"providers" yaml:"providers"`

	OAuth *OAuthConfig `json:"oauth" yaml:"oauth"`

	Session *SessionConfig `json:"session" yaml:"session"`

	// Secrets configures the keeper that seals pending credentials
	Secrets *SecretsConfig `json:"secrets" yaml:"secrets"`

	UI *UIConfig `json:"ui" yaml:"ui"`

	// PubSub configuration for link event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// Worker configures the audit worker that receives link events
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the identity platform project
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// APIKey is the web API key used for the client-side identity endpoints
	APIKey string `json:"apiKey" yaml:"apiKey"`
	// ContinueURL is where emailed action links return to
	ContinueURL string `json:"continueUrl" yaml:"continueUrl"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// StateConfig selects the redirect state driver
type StateConfig struct {
	// Driver is "redis" or "memory"
	Driver string        `json:"driver" yaml:"driver"`
	TTL    time.Duration `json:"ttl" yaml:"ttl"`
}

// LinkConfig defines the account-linking knobs
type LinkConfig struct {
	MaxPasswordRetryCount         int           `json:"maxPasswordRetryCount" yaml:"maxPasswordRetryCount"`
	SettleDelay                   time.Duration `json:"settleDelay" yaml:"settleDelay"`
	DiscloseUserNotFound          bool          `json:"discloseUserNotFound" yaml:"discloseUserNotFound"`
	EmailVerificationRequired     bool          `json:"emailVerificationRequired" yaml:"emailVerificationRequired"`
	EnforceReservedDomains        bool          `json:"enforceReservedDomains" yaml:"enforceReservedDomains"`
	SendVerificationOnEmailUpdate bool          `json:"sendVerificationOnEmailUpdate" yaml:"sendVerificationOnEmailUpdate"`
	VerifyBeforeEmailUpdate       bool          `json:"verifyBeforeEmailUpdate" yaml:"verifyBeforeEmailUpdate"`
	TrustedProvider               string        `json:"trustedProvider" yaml:"trustedProvider"`
	FlowTTL                       time.Duration `json:"flowTtl" yaml:"flowTtl"`
}

// ProviderConfig is the OAuth client of one federated provider
type ProviderConfig struct {
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	Scopes       []string `json:"scopes" yaml:"scopes"`
}

// OAuthConfig defines where providers send the user back to
type OAuthConfig struct {
	CallbackURL string `json:"callbackUrl" yaml:"callbackUrl"`
}

// SessionConfig defines the session cookie
type SessionConfig struct {
	CookieName string        `json:"cookieName" yaml:"cookieName"`
	SigningKey string        `json:"signingKey" yaml:"signingKey"`
	TTL        time.Duration `json:"ttl" yaml:"ttl"`
	Secure     bool          `json:"secure" yaml:"secure"`
}

// SecretsConfig defines the secrets keeper, e.g. "base64key://..." or "gcpkms://..."
type SecretsConfig struct {
	KeeperURL string `json:"keeperUrl" yaml:"keeperUrl"`
}

// UIConfig defines the browser pages the callback redirects to
type UIConfig struct {
	BaseURL  string `json:"baseUrl" yaml:"baseUrl"`
	LinkPath string `json:"linkPath" yaml:"linkPath"`
	HomePath string `json:"homePath" yaml:"homePath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// RateLimitConfig defines the per-client limiter on auth endpoints
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// WorkerConfig defines the audit worker HTTP endpoint
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
	// Audience is the expected audience of Pub/Sub push OIDC tokens; empty disables verification
	Audience string `json:"audience" yaml:"audience"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.State == nil {
		cfg.State = &StateConfig{Driver: "memory"}
	}
	if cfg.State.TTL <= 0 {
		cfg.State.TTL = defaultStateTTL
	}

	if cfg.Redis != nil && cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = defaultRedisKeyPrefix
	}

	if cfg.Link == nil {
		cfg.Link = &LinkConfig{
			DiscloseUserNotFound:          true,
			EnforceReservedDomains:        true,
			SendVerificationOnEmailUpdate: true,
		}
	}
	if cfg.Link.MaxPasswordRetryCount <= 0 {
		cfg.Link.MaxPasswordRetryCount = defaultMaxPasswordRetry
	}
	if cfg.Link.SettleDelay < 0 {
		cfg.Link.SettleDelay = 0
	} else if cfg.Link.SettleDelay == 0 {
		cfg.Link.SettleDelay = defaultSettleDelay
	}
	if cfg.Link.FlowTTL <= 0 {
		cfg.Link.FlowTTL = defaultFlowTTL
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultCookieName
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}

	if cfg.UI == nil {
		cfg.UI = &UIConfig{}
	}
	if cfg.UI.LinkPath == "" {
		cfg.UI.LinkPath = "/link"
	}
	if cfg.UI.HomePath == "" {
		cfg.UI.HomePath = "/"
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
