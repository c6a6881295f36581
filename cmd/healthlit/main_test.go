package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/healthlit/internal/constants"
)

func TestParserReadsEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.db")
	t.Setenv(constants.EnvConfig, path)
	t.Setenv(constants.EnvDebug, "true")

	parser, err := kong.New(&CLI, parserOptions()...)
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}
	ctx, err := parser.Parse([]string{"log", "list"})
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if ctx.Command() != "log list" {
		t.Errorf("expected 'log list', got %q", ctx.Command())
	}
	if CLI.Config != path {
		t.Errorf("expected config %q from %s, got %q", path, constants.EnvConfig, CLI.Config)
	}
	if !CLI.Debug {
		t.Errorf("expected debug from %s", constants.EnvDebug)
	}
}

func TestParserDefaultConfig(t *testing.T) {
	for _, env := range []string{constants.EnvConfig, constants.EnvDebug} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}

	parser, err := kong.New(&CLI, parserOptions()...)
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}
	if _, err := parser.Parse([]string{"doctor"}); err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if CLI.Config != constants.DefaultConfigPath {
		t.Errorf("expected default config %q, got %q", constants.DefaultConfigPath, CLI.Config)
	}
}
