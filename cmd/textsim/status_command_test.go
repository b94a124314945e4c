package main

import (
	"context"
	"encoding/json"
	"net"
	"strings"
	"testing"

	"textsim/internal/api"
	"textsim/internal/daemon"
	"textsim/internal/logging"
	"textsim/internal/testsupport"
)

func startTestDaemon(t *testing.T) *daemon.Daemon {
	t.Helper()
	cfg := testsupport.NewConfig(t, testsupport.WithoutLogFile())
	svc, err := api.NewSimilarityService(cfg.Similarity.CacheSize, cfg.Similarity.Precision, logging.NewNop())
	if err != nil {
		t.Fatalf("NewSimilarityService: %v", err)
	}
	d, err := daemon.New(cfg, svc, logging.NewNop())
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() {
		d.Close()
	})
	return d
}

func TestStatusCommandRunningDaemon(t *testing.T) {
	env := setupCLITestEnv(t)
	d := startTestDaemon(t)

	out, _, err := runCLI(t, []string{"status", "--addr", d.Addr()}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "[OK] running")
	requireContains(t, out, d.Addr())
	requireContains(t, out, "0 computed")

	out, _, err = runCLI(t, []string{"status", "--json", "--addr", d.Addr()}, env.configPath)
	if err != nil {
		t.Fatalf("status --json: %v", err)
	}
	var status api.StatusResponse
	if err := json.Unmarshal([]byte(out), &status); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if !status.Running {
		t.Fatalf("expected running status, got %+v", status)
	}
}

func TestStatusCommandNoDaemon(t *testing.T) {
	env := setupCLITestEnv(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := listener.Addr().String()
	listener.Close()

	out, _, err := runCLI(t, []string{"status", "--addr", addr}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "[ERROR] not running")
}

func TestCompareRemote(t *testing.T) {
	env := setupCLITestEnv(t)
	d := startTestDaemon(t)

	out, _, err := runCLI(t, []string{"compare", "--addr", d.Addr(), api.SampleFetchRewards, api.SampleSpecialOffers}, env.configPath)
	if err != nil {
		t.Fatalf("compare --addr: %v", err)
	}
	if strings.TrimSpace(out) != "0.5976" {
		t.Fatalf("remote compare output = %q", out)
	}

	if _, _, err := runCLI(t, []string{"compare", "--addr", d.Addr(), "?!", "hello"}, env.configPath); err == nil {
		t.Fatal("expected remote zero magnitude error")
	}
}
