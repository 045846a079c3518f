package emu

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/sm83/gbcore/internal/harness"
)

// findROMs recursively collects .gb/.gbc files under dir.
func findROMs(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		low := strings.ToLower(d.Name())
		if strings.HasSuffix(low, ".gb") || strings.HasSuffix(low, ".gbc") {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}

func runBlargg(t *testing.T, romPath string, maxSteps int64) {
	t.Helper()
	m := New(Config{})
	if err := m.LoadROMFromFile(romPath, ""); err != nil {
		t.Fatalf("load ROM: %v", err)
	}
	var watcher harness.SerialWatcher
	m.SetSerialWriter(&watcher)

	err := m.Harness.Run(context.Background(), maxSteps)
	if watcher.Passed() {
		return
	}
	if watcher.Failed() {
		t.Fatalf("%s reported failure via serial:\n%s", filepath.Base(romPath), watcher.String())
	}
	if err != nil {
		t.Fatalf("%s: %v (serial so far:\n%s)", filepath.Base(romPath), err, watcher.String())
	}
	t.Fatalf("timeout waiting for serial pass marker in %s; last output:\n%s", filepath.Base(romPath), watcher.String())
}

// TestBlargg scans testroms/blargg (or BLARGG_DIR) for .gb/.gbc ROMs
// and runs each to completion via its serial pass/fail marker. Opt-in
// via RUN_BLARGG since these runs take far longer than a unit test.
func TestBlargg(t *testing.T) {
	if os.Getenv("RUN_BLARGG") == "" {
		t.Skip("set RUN_BLARGG=1 and place ROMs under testroms/blargg or set BLARGG_DIR to run")
	}

	base := os.Getenv("BLARGG_DIR")
	if base == "" {
		var root string
		if _, file, _, ok := runtime.Caller(0); ok {
			dir := filepath.Dir(file)
			for {
				if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
					root = dir
					break
				}
				parent := filepath.Dir(dir)
				if parent == dir {
					break
				}
				dir = parent
			}
		}
		if root == "" {
			if wd, err := os.Getwd(); err == nil {
				root = wd
			} else {
				root = "."
			}
		}
		base = filepath.Join(root, "testroms", "blargg")
	}
	if _, err := os.Stat(base); err != nil {
		t.Skipf("blargg ROM dir missing: %s", base)
	}

	roms, err := findROMs(base)
	if err != nil {
		t.Fatalf("scan ROMs: %v", err)
	}
	if len(roms) == 0 {
		t.Skipf("no ROMs found in %s", base)
	}

	maxSteps := int64(200_000_000)
	if v := os.Getenv("BLARGG_MAX_STEPS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxSteps = n
		}
	}

	for _, rom := range roms {
		rom := rom
		name := strings.TrimSuffix(filepath.Base(rom), filepath.Ext(rom))
		t.Run(name, func(t *testing.T) { runBlargg(t, rom, maxSteps) })
	}
}
