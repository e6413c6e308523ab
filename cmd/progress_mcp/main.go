// Package main runs the progress MCP server over stdio for local MCP clients.
// The same server is mounted on the service at /mcp over HTTP, where the user
// comes from the session; here it is fixed with -user.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/2beens/gymprogress/internal/auth"
	"github.com/2beens/gymprogress/internal/completions"
	"github.com/2beens/gymprogress/internal/config"
	"github.com/2beens/gymprogress/internal/db"
	"github.com/2beens/gymprogress/internal/mcp"
	"github.com/2beens/gymprogress/internal/programs"
	"github.com/2beens/gymprogress/internal/telemetry/metrics"
	"github.com/2beens/gymprogress/internal/users"
	"github.com/2beens/gymprogress/pkg"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	userID := flag.Int("user", 0, "id of the user the tools act for")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)
	_ = godotenv.Load()

	if *userID <= 0 {
		log.Fatalln("-user is required")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("GYMPROGRESS_POSTGRES_USER"),
		DBPassword: os.Getenv("GYMPROGRESS_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	deletePolicy, err := programs.ParseDeletePolicy(cfg.DeletePolicy)
	if err != nil {
		log.Fatalf("delete policy: %s", err)
	}

	clock := pkg.SystemClock{}
	metricsManager := metrics.NewManager("gymprogress", "mcp_stdio", prometheus.NewRegistry())
	userRepo := users.NewRepo(dbPool)
	programRepo := programs.NewCachedRepo(programs.NewRepo(dbPool), cfg.ProgramCacheSizeMB, time.Duration(cfg.ProgramCacheTTLSeconds)*time.Second)
	programService := programs.NewService(programRepo, userRepo, clock, deletePolicy, metricsManager)
	completionService := completions.NewService(completions.NewRepo(dbPool), programService, userRepo, clock, metricsManager)

	s := mcp.New(programService, completionService, "stdio")
	if err := server.ServeStdio(s, server.WithStdioContextFunc(func(ctx context.Context) context.Context {
		return auth.WithUserID(ctx, *userID)
	})); err != nil {
		log.Fatal(err)
	}
}
