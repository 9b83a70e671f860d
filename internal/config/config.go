// Package config loads the server configuration from the environment. MCP
// servers are launched by their client with environment-only configuration,
// so there is no flag or file parsing here beyond an optional .env file
// loaded by the binary.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variable names.
const (
	EnvDocsRoot = "DOCS_MCP_ROOT"
	EnvRepo     = "DOCS_MCP_REPO"
	EnvBranch   = "DOCS_MCP_BRANCH"
	EnvToken    = "DOCS_MCP_GITHUB_TOKEN"
	EnvCacheTTL = "DOCS_MCP_CACHE_TTL"

	// EnvFallbackToken is consulted when EnvToken is unset.
	EnvFallbackToken = "GITHUB_TOKEN"
)

// Defaults.
const (
	DefaultRepo     = "cleanslice/docs"
	DefaultBranch   = "main"
	DefaultCacheTTL = time.Hour
)

// Config holds everything the server needs to start.
type Config struct {
	DocsRoot  string // Empty triggers auto-discovery
	RepoOwner string
	RepoName  string
	Branch    string
	Token     string
	CacheTTL  time.Duration

	// RemoteEnabled is false when the repo identifier is explicitly blanked,
	// running the server on the local corpus alone.
	RemoteEnabled bool
}

// FromEnv builds the configuration from environment variables, applying
// defaults for everything unset.
func FromEnv() (Config, error) {
	cfg := Config{
		DocsRoot:      os.Getenv(EnvDocsRoot),
		Branch:        os.Getenv(EnvBranch),
		Token:         os.Getenv(EnvToken),
		CacheTTL:      DefaultCacheTTL,
		RemoteEnabled: true,
	}

	if cfg.Branch == "" {
		cfg.Branch = DefaultBranch
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv(EnvFallbackToken)
	}

	repo := DefaultRepo
	if v, set := os.LookupEnv(EnvRepo); set {
		repo = strings.TrimSpace(v)
	}
	if repo == "" {
		cfg.RemoteEnabled = false
	} else {
		owner, name, ok := strings.Cut(repo, "/")
		if !ok || owner == "" || name == "" {
			return Config{}, fmt.Errorf("%s must be \"owner/repo\", got %q", EnvRepo, repo)
		}
		cfg.RepoOwner = owner
		cfg.RepoName = name
	}

	if v := os.Getenv(EnvCacheTTL); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive number of seconds, got %q", EnvCacheTTL, v)
		}
		cfg.CacheTTL = time.Duration(secs) * time.Second
	}

	return cfg, nil
}
