package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initFile points the package logger at a fresh file and returns its path.
func initFile(t *testing.T, level string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackhole.log")
	cfg := FileConfig{Path: path, MaxSizeMB: 10, MaxBackups: 1, MaxAgeDays: 1}
	if err := InitWithFileConfig(level, cfg, false); err != nil {
		t.Fatalf("InitWithFileConfig: %v", err)
	}
	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestFileRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frames.log")

	// 1 MB is the smallest size lumberjack accepts.
	cfg := FileConfig{Path: path, MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 1}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("InitWithFileConfig: %v", err)
	}

	padding := strings.Repeat("#", 200)
	for frame := 0; frame < 15000; frame++ {
		Sugar.Debugf("frame %d rotX=%.2f %s", frame, float64(frame)*0.02, padding)
	}
	Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}

	var backups []string
	current := false
	for _, e := range entries {
		switch {
		case e.Name() == "frames.log":
			current = true
		case strings.HasPrefix(e.Name(), "frames-") && strings.HasSuffix(e.Name(), ".log"):
			backups = append(backups, e.Name())
		}
	}

	if !current {
		t.Error("active log file missing")
	}
	if len(backups) == 0 {
		t.Errorf("expected at least one rotated backup, found %v", entries)
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		want  []string
		skip  []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			path := initFile(t, tt.level)

			Debug("mesh uploaded")
			Info("window created")
			Warn("failed to set swap interval")
			Error("render loop error")

			out := strings.Join(readLines(t, path), "\n")
			for _, lvl := range tt.want {
				if !strings.Contains(out, lvl) {
					t.Errorf("expected %s entries at level %s", lvl, tt.level)
				}
			}
			for _, lvl := range tt.skip {
				if strings.Contains(out, lvl) {
					t.Errorf("unexpected %s entry at level %s", lvl, tt.level)
				}
			}
		})
	}
}

func TestEncoderConfig(t *testing.T) {
	enc := encoderConfig()

	if enc.TimeKey != "time" || enc.LevelKey != "level" || enc.MessageKey != "msg" || enc.CallerKey != "caller" {
		t.Errorf("unexpected keys: %+v", enc)
	}
	if enc.ConsoleSeparator != " " {
		t.Errorf("expected single-space separator, got %q", enc.ConsoleSeparator)
	}
	if enc.EncodeCaller == nil || enc.EncodeDuration == nil {
		t.Error("caller and duration encoders must be set")
	}
	// Time and level encoders are chosen per sink.
	if enc.EncodeTime != nil || enc.EncodeLevel != nil {
		t.Error("shared config should leave time and level encoding to each core")
	}
}

func TestFileEntryFormat(t *testing.T) {
	path := initFile(t, "info")

	Info("screenshot saved", zap.Duration("took", 1500*time.Millisecond))

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("expected one entry, got %d: %q", len(lines), lines)
	}
	line := lines[0]

	if strings.Contains(line, "\x1b[") {
		t.Errorf("file entries must not carry color codes: %q", line)
	}

	fields := strings.SplitN(line, " ", 4)
	if len(fields) < 4 {
		t.Fatalf("expected time, level, caller and message, got %q", line)
	}
	if _, err := time.Parse("2006-01-02T15:04:05.000Z0700", fields[0]); err != nil {
		t.Errorf("time %q is not ISO8601: %v", fields[0], err)
	}
	if fields[1] != "INFO" {
		t.Errorf("level = %q, want INFO", fields[1])
	}
	if !strings.Contains(fields[3], "screenshot saved") || !strings.Contains(fields[3], `"took": "1.5s"`) {
		t.Errorf("message or duration field missing: %q", fields[3])
	}
}

func TestCallerIsTheCallSite(t *testing.T) {
	path := initFile(t, "debug")

	Info("from helper")
	Sugar.Infof("from %s", "sugar")
	Log.Info("from logger")

	for _, line := range readLines(t, path) {
		if !strings.Contains(line, "logger/logger_test.go:") {
			t.Errorf("caller should point at this file: %q", line)
		}
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("blackhole.log")

	want := FileConfig{Path: "blackhole.log", MaxSizeMB: 20, MaxBackups: 3, MaxAgeDays: 7, Compress: true}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"", zapcore.InfoLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	if err := InitWithFileConfig("loud", FileConfig{}, false); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLoggingBeforeInit(t *testing.T) {
	saved := Log
	defer setLogger(saved)

	setLogger(zap.NewNop())

	// Must not panic.
	Info("before init", zap.Int("frame", 1))
	Sugar.Debugf("frame %d", 2)
}
