package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func testServerConfig(t *testing.T) SSHServerConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")
	cfg.LogLevel = log.ErrorLevel
	return cfg
}

func TestNewSSHServerRejectsInvalidParams(t *testing.T) {
	cfg := testServerConfig(t)
	cfg.Params.Width = 2

	if _, err := NewSSHServer(cfg); err == nil {
		t.Fatal("expected invalid params to be rejected")
	}
}

func TestNewSSHServerPreparesHostKeyDir(t *testing.T) {
	cfg := testServerConfig(t)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}
	defer srv.Shutdown()

	if _, err := os.Stat(filepath.Dir(cfg.HostKeyPath)); err != nil {
		t.Errorf("host key directory should exist: %v", err)
	}
	if srv.store == nil {
		t.Error("run history should be open")
	}
}

func TestSSHServerServeStopsOnCancel(t *testing.T) {
	srv, err := NewSSHServer(testServerConfig(t))
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	if srv.store != nil {
		t.Error("store should be closed after shutdown")
	}
}

func TestSSHServerPort(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23235", "23235"},
		{"127.0.0.1:2222", "2222"},
		{"localhost", ""},
	}

	for _, tc := range tests {
		s := &SSHServer{config: SSHServerConfig{Address: tc.addr}}
		if got := s.Port(); got != tc.want {
			t.Errorf("Port(%q) = %q, want %q", tc.addr, got, tc.want)
		}
	}
}
