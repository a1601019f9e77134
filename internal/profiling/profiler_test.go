package profiling

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigEnabled(t *testing.T) {
	if (Config{}).Enabled() {
		t.Error("empty config enabled")
	}
	if !(Config{MemProfilePath: "mem.prof"}).Enabled() {
		t.Error("memory profile not enabled")
	}
}

func TestProfilerStartStop(t *testing.T) {
	dir := t.TempDir()
	cpuPath := filepath.Join(dir, "cpu.prof")
	memPath := filepath.Join(dir, "mem.prof")

	p := New(Config{CPUProfilePath: cpuPath, MemProfilePath: memPath})
	if err := p.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !p.IsRunning() {
		t.Error("IsRunning() = false after Start")
	}
	if err := p.Start(); !errors.Is(err, ErrRunning) {
		t.Errorf("second Start() error = %v, want ErrRunning", err)
	}
	if err := p.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if p.IsRunning() {
		t.Error("IsRunning() = true after Stop")
	}

	for _, path := range []string{cpuPath, memPath} {
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("profile %s missing or empty: %v", filepath.Base(path), err)
		}
	}
}

func TestProfilerStopWithoutStart(t *testing.T) {
	if err := New(Config{}).Stop(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Stop() error = %v, want ErrNotRunning", err)
	}
}

func TestProfilerNothingConfigured(t *testing.T) {
	p := New(Config{})
	if err := p.Start(); err != nil {
		t.Fatal(err)
	}
	if err := p.Stop(); err != nil {
		t.Fatal(err)
	}
}

func TestProfilerBadPath(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "missing", "cpu.prof")
	if err := New(Config{CPUProfilePath: bad}).Start(); err == nil {
		t.Error("Start() accepted an uncreatable path")
	}

	p := New(Config{MemProfilePath: bad})
	if err := p.Start(); err != nil {
		t.Fatal(err)
	}
	if err := p.Stop(); err == nil {
		t.Error("Stop() ignored heap profile failure")
	}
	if p.IsRunning() {
		t.Error("profiler still running after failed Stop")
	}
}
