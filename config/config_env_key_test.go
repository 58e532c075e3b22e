package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"cache": map[string]any{
			"bucketUrl": "",
			"user": map[string]any{
				"maxSize": 500,
			},
		},
		"notification": map[string]any{
			"apiKey": "",
		},
		"referral": map[string]any{
			"profileBaseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CACHE_USER_MAXSIZE", want: "cache.user.maxSize"},
		{envKey: "CACHE_BUCKETURL", want: "cache.bucketUrl"},
		{envKey: "NOTIFICATION_APIKEY", want: "notification.apiKey"},
		{envKey: "REFERRAL_PROFILEBASEURL", want: "referral.profileBaseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 2, cfg.Referral.MilestoneSize)
	assert.Equal(t, 50, cfg.Referral.MilestoneCredits)
	assert.Equal(t, 25, cfg.Referral.ReferredRewardPoints)
	assert.Equal(t, 5*time.Minute, cfg.Cache.User.TTL)
	assert.Equal(t, 10*time.Minute, cfg.Cache.Business.TTL)
	assert.Equal(t, 3*time.Minute, cfg.Cache.Search.TTL)
	assert.Equal(t, 15*time.Minute, cfg.Cache.Stats.TTL)
	assert.Equal(t, 5*time.Second, cfg.Notification.Timeout)
	assert.Equal(t, "inline", cfg.Tasks.Mode)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Referral: &ReferralConfig{MilestoneSize: 3},
		Cache:    &CacheConfig{Search: CacheInstanceConfig{TTL: time.Minute, MaxSize: 7}},
	}
	ApplyDefaults(cfg)

	assert.Equal(t, 3, cfg.Referral.MilestoneSize)
	assert.Equal(t, time.Minute, cfg.Cache.Search.TTL)
	assert.Equal(t, 7, cfg.Cache.Search.MaxSize)
}
