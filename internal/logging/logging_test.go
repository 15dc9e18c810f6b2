package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"torus-life/internal/config"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"nonsense", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tc := range cases {
		log, err := New(config.LoggingConfig{Level: tc.level, Format: "json", File: filepath.Join(t.TempDir(), "life.log")})
		if err != nil {
			t.Fatal(err)
		}
		if !log.Core().Enabled(tc.want) {
			t.Fatalf("level %q: %s should be enabled", tc.level, tc.want)
		}
		if tc.want > zapcore.DebugLevel && log.Core().Enabled(tc.want-1) {
			t.Fatalf("level %q: %s should be disabled", tc.level, tc.want-1)
		}
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.log")
	log, err := New(config.LoggingConfig{Level: "info", Format: "console", File: path})
	if err != nil {
		t.Fatal(err)
	}
	log.Info("board reset")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "board reset") {
		t.Fatalf("log file missing message: %q", data)
	}
	if strings.Contains(string(data), "\x1b[") {
		t.Fatal("file output should not carry terminal color codes")
	}
}
