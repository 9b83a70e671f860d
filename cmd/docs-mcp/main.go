package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cleanslice/docs-mcp/internal/config"
	"github.com/cleanslice/docs-mcp/internal/gateway"
	"github.com/cleanslice/docs-mcp/internal/mcp"
	"github.com/cleanslice/docs-mcp/internal/source"
	"github.com/cleanslice/docs-mcp/internal/source/local"
	"github.com/cleanslice/docs-mcp/internal/source/remote"
	"github.com/cleanslice/docs-mcp/pkg/types"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("Docs MCP Server\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		os.Exit(0)
	}

	// Log startup info to stderr (stdout reserved for MCP protocol)
	log.SetOutput(os.Stderr)
	log.Printf("Docs MCP Server v%s starting...", version)

	// Optional .env file for local development; absence is fine
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	localLoader, err := local.NewLoader(cfg.DocsRoot)
	if err != nil {
		if errors.Is(err, types.ErrDocsRootNotFound) {
			log.Fatalf("No docs directory found: %v (set %s to point at one)", err, config.EnvDocsRoot)
		}
		log.Fatalf("Failed to index local docs: %v", err)
	}
	log.Printf("Local docs root: %s", localLoader.Root())

	var remoteRepo source.Repository
	if cfg.RemoteEnabled {
		remoteLoader, err := remote.NewLoader(remote.Config{
			Owner:  cfg.RepoOwner,
			Repo:   cfg.RepoName,
			Branch: cfg.Branch,
			Token:  cfg.Token,
			TTL:    cfg.CacheTTL,
		})
		if err != nil {
			log.Fatalf("Failed to set up remote source: %v", err)
		}
		remoteRepo = remote.NewRepository(remoteLoader)
		log.Printf("Remote docs source: %s/%s@%s", cfg.RepoOwner, cfg.RepoName, cfg.Branch)
	} else {
		log.Println("Remote docs source disabled")
	}

	gw := gateway.New(local.NewRepository(localLoader), remoteRepo)
	server := mcp.NewServer(gw)

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	errChan := make(chan error, 1)
	go func() {
		log.Println("MCP server ready, listening on stdio...")
		errChan <- server.Serve(ctx)
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down gracefully...", sig)
		cancel()
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}

	log.Println("Server stopped")
}
