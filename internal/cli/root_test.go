package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"market-tycoon/internal/config"
)

func TestStoreFollowsConfigDir(t *testing.T) {
	dir := t.TempDir()
	cmd := NewRootCmd(config.Default(), zerolog.Nop())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", dir, "version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "tycoon.db")); err != nil {
		t.Fatalf("history database not created under the overridden config dir: %v", err)
	}
}

func TestConfigPathHonorsOverride(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	cmd := NewRootCmd(config.Default(), zerolog.Nop())
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", dir, "config", "path"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), dir) {
		t.Errorf("config path printed %q, want the overridden dir %q", out.String(), dir)
	}
}
