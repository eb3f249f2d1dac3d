package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSweepChecksEveryReferencedPiece(t *testing.T) {
	for _, workers := range []int{1, 4} {
		pieces, checked, err := sweep(context.Background(), workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if pieces != 5 {
			t.Fatalf("workers=%d: got %d pieces, want 5", workers, pieces)
		}
		if checked != 5*64 {
			t.Fatalf("workers=%d: checked %d squares, want %d", workers, checked, 5*64)
		}
	}
}

func TestSweepHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := sweep(ctx, 2); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
}

func TestRunWritesAndClosesProfile(t *testing.T) {
	prof := filepath.Join(t.TempDir(), "sweep.prof")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-workers", "2", "-cpuprofile", prof}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "5 \t64 \t320 \t") {
		t.Fatalf("unexpected summary %q", stdout.String())
	}
	info, err := os.Stat(prof)
	if err != nil {
		t.Fatalf("stat profile: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("profile was not flushed")
	}
	if err := os.Remove(prof); err != nil {
		t.Fatalf("remove profile: %v", err)
	}
}

func TestRunRejectsBadFlagsAndConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-nosuchflag"}, &stdout, &stderr); code != 2 {
		t.Fatalf("unknown flag: exit code %d, want 2", code)
	}
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	if code := run([]string{"-config", missing}, &stdout, &stderr); code != 2 {
		t.Fatalf("missing config: exit code %d, want 2", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("nothing should reach stdout on failure, got %q", stdout.String())
	}
}
