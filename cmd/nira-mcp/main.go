package main

import (
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"nira/internal/adapters/filesystem"
	mcpadapter "nira/internal/adapters/mcp"
	"nira/internal/adapters/sqlite"
	"nira/internal/config"
	"nira/internal/logging"
	"nira/internal/ports"
)

func main() {
	wd, err := os.Getwd()
	if err != nil {
		logging.New(config.DefaultLogLevel, os.Stderr).Fatal("nira-mcp", "err", err)
	}

	cfg, err := config.Load(wd)
	if err != nil {
		logging.New(config.DefaultLogLevel, os.Stderr).Fatal("nira-mcp: config", "err", err)
	}

	fileFlag := flag.String("file", cfg.File, "path to the blueprint")
	flag.Parse()

	// stdout carries the MCP protocol; logs go to stderr
	logger := logging.New(cfg.LogLevel, os.Stderr)

	repo := filesystem.NewRepository(*fileFlag)

	var journal ports.Journal
	if cfg.Journal.Enabled {
		j, err := sqlite.Open(cfg.Journal.DataDir, cfg.Journal.Keep)
		if err != nil {
			logger.Warn("revision journal unavailable", "err", err)
		} else {
			journal = j
			defer j.Close()
		}
	}

	logger.Info("serving MCP over stdio", "blueprint", repo.Path())
	if err := server.ServeStdio(mcpadapter.NewServer("nira-mcp", repo, journal)); err != nil {
		logger.Error("nira-mcp", "err", err)
		os.Exit(1)
	}
}
