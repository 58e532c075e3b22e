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

	defaultNotificationTimeout = 5 * time.Second
	defaultMaxLogs             = 1000
	defaultProfileBaseURL      = "https://booknow.app/join"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Referral reward amounts and code format
	Referral *ReferralConfig `json:"referral" yaml:"referral"`

	// Cache instance sizing and persistence
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	Resilience *ResilienceConfig `json:"resilience" yaml:"resilience"`

	// Notification configuration for the outbound email endpoint
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// Tasks configuration for the background task outbox
	Tasks *TasksConfig `json:"tasks" yaml:"tasks"`

	// PubSub configuration for task relay
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for referral share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Diagnostics *DiagnosticsConfig `json:"diagnostics" yaml:"diagnostics"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL    time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ReferralConfig defines the referral milestone rules
type ReferralConfig struct {
	// Completed referrals needed per milestone
	MilestoneSize int `json:"milestoneSize" yaml:"milestoneSize"`

	// Credits granted to the referrer at each milestone
	MilestoneCredits int `json:"milestoneCredits" yaml:"milestoneCredits"`

	// Points granted to each referred user in a completed milestone
	ReferredRewardPoints int `json:"referredRewardPoints" yaml:"referredRewardPoints"`

	CodePrefix string `json:"codePrefix" yaml:"codePrefix"`

	// Base URL of the public profile/share page, used in notifications and QR codes
	ProfileBaseURL string `json:"profileBaseUrl" yaml:"profileBaseUrl"`
}

// CacheInstanceConfig sizes a single cache manager
type CacheInstanceConfig struct {
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
	MaxSize int           `json:"maxSize" yaml:"maxSize"`
	Persist bool          `json:"persist" yaml:"persist"`
}

// CacheConfig defines the four cache instances
type CacheConfig struct {
	User     CacheInstanceConfig `json:"user" yaml:"user"`
	Business CacheInstanceConfig `json:"business" yaml:"business"`
	Search   CacheInstanceConfig `json:"search" yaml:"search"`
	Stats    CacheInstanceConfig `json:"stats" yaml:"stats"`

	// Bucket URL for persisted snapshots, e.g. file:///var/lib/booknow/cache or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	// TTL of stats read back from the persisted row; defaults to the stats cache TTL
	StatsReadTTL time.Duration `json:"statsReadTTL" yaml:"statsReadTTL"`
}

// BreakerConfig defines circuit breaker thresholds
type BreakerConfig struct {
	Threshold int           `json:"threshold" yaml:"threshold"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// RetryConfig defines retry backoff
type RetryConfig struct {
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries"`
	BaseDelay   time.Duration `json:"baseDelay" yaml:"baseDelay"`
	MaxDelay    time.Duration `json:"maxDelay" yaml:"maxDelay"`
	Exponential bool          `json:"exponential" yaml:"exponential"`
}

// ResilienceConfig defines the error log buffer, breakers and retries
type ResilienceConfig struct {
	MaxLogs int           `json:"maxLogs" yaml:"maxLogs"`
	Breaker BreakerConfig `json:"breaker" yaml:"breaker"`
	Retry   RetryConfig   `json:"retry" yaml:"retry"`
}

// NotificationConfig defines the outbound reward email endpoint.
// An empty Endpoint disables dispatch.
type NotificationConfig struct {
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// TasksConfig defines the background task outbox
type TasksConfig struct {
	// Mode: "inline" runs handlers in the dispatcher, "pubsub" relays to the task worker
	Mode         string        `json:"mode" yaml:"mode"`
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
	BatchSize    int           `json:"batchSize" yaml:"batchSize"`
	MaxAttempts  int           `json:"maxAttempts" yaml:"maxAttempts"`
	BaseDelay    time.Duration `json:"baseDelay" yaml:"baseDelay"`
	MaxDelay     time.Duration `json:"maxDelay" yaml:"maxDelay"`
}

// PubSubConfig defines Pub/Sub configuration for task relay
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of push OIDC tokens; empty skips verification
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type DiagnosticsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// CACHE_USER_MAXSIZE -> cache.user.maxSize
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	ApplyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every unset section with the production defaults.
func ApplyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 12
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = 24 * time.Hour
	}
	if cfg.Auth.MinPasswordLength == 0 {
		cfg.Auth.MinPasswordLength = 8
	}

	if cfg.Referral == nil {
		cfg.Referral = &ReferralConfig{}
	}
	if cfg.Referral.MilestoneSize == 0 {
		cfg.Referral.MilestoneSize = 2
	}
	if cfg.Referral.MilestoneCredits == 0 {
		cfg.Referral.MilestoneCredits = 50
	}
	if cfg.Referral.ReferredRewardPoints == 0 {
		cfg.Referral.ReferredRewardPoints = 25
	}
	if cfg.Referral.CodePrefix == "" {
		cfg.Referral.CodePrefix = "BN"
	}
	if cfg.Referral.ProfileBaseURL == "" {
		cfg.Referral.ProfileBaseURL = defaultProfileBaseURL
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	defaultCacheInstance(&cfg.Cache.User, 5*time.Minute, 500)
	defaultCacheInstance(&cfg.Cache.Business, 10*time.Minute, 200)
	defaultCacheInstance(&cfg.Cache.Search, 3*time.Minute, 100)
	defaultCacheInstance(&cfg.Cache.Stats, 15*time.Minute, 1000)
	if cfg.Cache.StatsReadTTL == 0 {
		cfg.Cache.StatsReadTTL = cfg.Cache.Stats.TTL
	}

	if cfg.Resilience == nil {
		cfg.Resilience = &ResilienceConfig{}
	}
	if cfg.Resilience.MaxLogs == 0 {
		cfg.Resilience.MaxLogs = defaultMaxLogs
	}
	if cfg.Resilience.Breaker.Threshold == 0 {
		cfg.Resilience.Breaker.Threshold = 5
	}
	if cfg.Resilience.Breaker.Timeout == 0 {
		cfg.Resilience.Breaker.Timeout = 60 * time.Second
	}
	if cfg.Resilience.Retry.MaxRetries == 0 {
		cfg.Resilience.Retry.MaxRetries = 3
	}
	if cfg.Resilience.Retry.BaseDelay == 0 {
		cfg.Resilience.Retry.BaseDelay = time.Second
	}
	if cfg.Resilience.Retry.MaxDelay == 0 {
		cfg.Resilience.Retry.MaxDelay = 10 * time.Second
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.Timeout == 0 {
		cfg.Notification.Timeout = defaultNotificationTimeout
	}

	if cfg.Tasks == nil {
		cfg.Tasks = &TasksConfig{}
	}
	if cfg.Tasks.Mode == "" {
		cfg.Tasks.Mode = "inline"
	}
	if cfg.Tasks.PollInterval == 0 {
		cfg.Tasks.PollInterval = 2 * time.Second
	}
	if cfg.Tasks.BatchSize == 0 {
		cfg.Tasks.BatchSize = 20
	}
	if cfg.Tasks.MaxAttempts == 0 {
		cfg.Tasks.MaxAttempts = 8
	}
	if cfg.Tasks.BaseDelay == 0 {
		cfg.Tasks.BaseDelay = 5 * time.Second
	}
	if cfg.Tasks.MaxDelay == 0 {
		cfg.Tasks.MaxDelay = 10 * time.Minute
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size == 0 {
		cfg.QRCode.Size = 256
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = "medium"
	}

	if cfg.Diagnostics == nil {
		cfg.Diagnostics = &DiagnosticsConfig{}
	}
}

func defaultCacheInstance(c *CacheInstanceConfig, ttl time.Duration, maxSize int) {
	if c.TTL == 0 {
		c.TTL = ttl
	}
	if c.MaxSize == 0 {
		c.MaxSize = maxSize
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

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
