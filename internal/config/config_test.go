package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{EnvDocsRoot, EnvRepo, EnvBranch, EnvToken, EnvCacheTTL, EnvFallbackToken} {
		t.Setenv(key, "")
	}
	// t.Setenv("", "") leaves the variable set-but-empty; unset repo to get
	// the default rather than the disabled state.
	cfg, err := FromEnv()
	require.NoError(t, err)

	// Set-but-empty repo disables the remote source.
	assert.False(t, cfg.RemoteEnabled)
	assert.Equal(t, DefaultBranch, cfg.Branch)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
	assert.Empty(t, cfg.DocsRoot)
	assert.Empty(t, cfg.Token)
}

func TestFromEnvRepoParsing(t *testing.T) {
	t.Setenv(EnvRepo, "acme/handbook")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.RemoteEnabled)
	assert.Equal(t, "acme", cfg.RepoOwner)
	assert.Equal(t, "handbook", cfg.RepoName)
}

func TestFromEnvRepoInvalid(t *testing.T) {
	for _, repo := range []string{"no-slash", "/name", "owner/"} {
		t.Setenv(EnvRepo, repo)
		_, err := FromEnv()
		assert.Error(t, err, "repo %q", repo)
	}
}

func TestFromEnvTokenFallback(t *testing.T) {
	t.Setenv(EnvToken, "")
	t.Setenv(EnvFallbackToken, "gh-fallback")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "gh-fallback", cfg.Token)

	t.Setenv(EnvToken, "gh-primary")
	cfg, err = FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "gh-primary", cfg.Token)
}

func TestFromEnvCacheTTL(t *testing.T) {
	t.Setenv(EnvCacheTTL, "120")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)

	for _, v := range []string{"0", "-5", "soon"} {
		t.Setenv(EnvCacheTTL, v)
		_, err := FromEnv()
		assert.Error(t, err, "ttl %q", v)
	}
}

func TestFromEnvBranchAndRoot(t *testing.T) {
	t.Setenv(EnvBranch, "develop")
	t.Setenv(EnvDocsRoot, "/srv/docs")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "develop", cfg.Branch)
	assert.Equal(t, "/srv/docs", cfg.DocsRoot)
}
