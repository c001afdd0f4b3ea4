package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const thermostat = `# Thermostat dial
min 10
max 30
reading 20
width 360
height 360
title Thermostat
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runArgs(args ...string) (code int, stdout, stderr string) {
	var out, errb bytes.Buffer
	code = run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	code, out, _ := runArgs("version")
	if code != 0 || !strings.Contains(out, Version) {
		t.Errorf("version = %d %q", code, out)
	}
}

func TestConvertCommand(t *testing.T) {
	path := writeFile(t, "slider.conf", thermostat)

	tests := []struct {
		to   string
		want []string
	}{
		{"yaml", []string{"slider:", "max: 30", "title: Thermostat"}},
		{"lua", []string{"slider.config", "max = 30"}},
		{"legacy", []string{"max 30", "title Thermostat"}},
	}
	for _, tt := range tests {
		t.Run(tt.to, func(t *testing.T) {
			code, out, errOut := runArgs("convert", path, "--to", tt.to)
			if code != 0 {
				t.Fatalf("convert exited %d: %s", code, errOut)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output is missing %q:\n%s", w, out)
				}
			}
		})
	}

	if code, _, _ := runArgs("convert", path, "--to", "toml"); code == 0 {
		t.Error("convert to an unknown format succeeded")
	}
	if code, _, _ := runArgs("convert"); code == 0 {
		t.Error("convert without a file succeeded")
	}
}

func TestSnapshotCommand(t *testing.T) {
	cfgPath := writeFile(t, "slider.conf", thermostat)
	out := filepath.Join(t.TempDir(), "dial.png")

	code, _, errOut := runArgs("snapshot", "-c", cfgPath, "-o", out, "--reading", "25")
	if code != 0 {
		t.Fatalf("snapshot exited %d: %s", code, errOut)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("snapshot was not written: %v", err)
	}
	defer f.Close()
	c, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("snapshot is not a PNG: %v", err)
	}
	if c.Width != 360 || c.Height != 360 {
		t.Errorf("snapshot size = %dx%d, want 360x360", c.Width, c.Height)
	}
	if !strings.Contains(errOut, "snapshot written") || !strings.Contains(errOut, "reading=25") {
		t.Errorf("log output = %q", errOut)
	}
}

func TestConfigErrors(t *testing.T) {
	invalid := writeFile(t, "bad.conf", "min 50\nmax 10\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"snapshot", "-c", "/nonexistent/slider.conf"}, "not found"},
		{"invalid range", []string{"snapshot", "-c", invalid}, "invalid"},
		{"bad log level", []string{"snapshot", "--log-level", "loud", "-o", filepath.Join(t.TempDir(), "x.png")}, "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runArgs(tt.args...)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.Contains(strings.ToLower(errOut), tt.want) {
				t.Errorf("stderr = %q, want it to mention %q", errOut, tt.want)
			}
		})
	}
}

func TestProfilingFlags(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")

	code, _, errOut := runArgs("version", "--cpuprofile", cpu, "--memprofile", mem)
	if code != 0 {
		t.Fatalf("version with profiling exited %d: %s", code, errOut)
	}
	for _, p := range []string{cpu, mem} {
		if fi, err := os.Stat(p); err != nil || fi.Size() == 0 {
			t.Errorf("profile %s was not written: %v", p, err)
		}
	}
}
