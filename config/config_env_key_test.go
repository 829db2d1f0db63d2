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
		"pubsub": map[string]any{
			"topicId": "",
		},
		"link": map[string]any{
			"maxPasswordRetryCount": 3,
			"flowTtl":               "10m",
		},
		"session": map[string]any{
			"signingKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "LINK_MAXPASSWORDRETRYCOUNT", want: "link.maxPasswordRetryCount"},
		{envKey: "LINK_FLOWTTL", want: "link.flowTtl"},
		{envKey: "SESSION_SIGNINGKEY", want: "session.signingKey"},
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

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "memory", cfg.State.Driver)
	assert.Equal(t, defaultStateTTL, cfg.State.TTL)
	assert.Equal(t, 3, cfg.Link.MaxPasswordRetryCount)
	assert.Equal(t, 2*time.Second, cfg.Link.SettleDelay)
	assert.True(t, cfg.Link.DiscloseUserNotFound)
	assert.True(t, cfg.Link.EnforceReservedDomains)
	assert.False(t, cfg.Link.EmailVerificationRequired)
	assert.Equal(t, defaultFlowTTL, cfg.Link.FlowTTL)
	assert.Equal(t, defaultCookieName, cfg.Session.CookieName)
	assert.Equal(t, "/link", cfg.UI.LinkPath)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Link:  &LinkConfig{MaxPasswordRetryCount: 5, SettleDelay: -1},
		Redis: &RedisConfig{Addr: "redis:6379"},
	}

	applyDefaults(cfg)

	assert.Equal(t, 5, cfg.Link.MaxPasswordRetryCount)
	assert.Equal(t, time.Duration(0), cfg.Link.SettleDelay)
	assert.Equal(t, defaultRedisKeyPrefix, cfg.Redis.KeyPrefix)
}
