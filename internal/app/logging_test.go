package app

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Info().Msg("hidden")
	log.Warn().Str("cherry", "(3,4)").Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected log output %q", out)
	}

	if _, err := NewLogger(&buf, "loud"); err == nil {
		t.Fatal("unknown level accepted")
	}
}

func TestOpenLog(t *testing.T) {
	w, err := OpenLog("")
	if err != nil {
		t.Fatalf("OpenLog(\"\"): %v", err)
	}
	if _, err := io.WriteString(w, "dropped"); err != nil || w.Close() != nil {
		t.Fatal("discard writer failed")
	}

	path := filepath.Join(t.TempDir(), "snake.log")
	w, err = OpenLog(path)
	if err != nil {
		t.Fatalf("OpenLog: %v", err)
	}
	io.WriteString(w, "line\n")
	w.Close()
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "line\n" {
		t.Fatalf("log file = %q, %v", data, err)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-tps", "30", "-log-level", "debug", "-tile", "10"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.TPS != 30 || cfg.LogLevel != "debug" || cfg.Game.TileSize != 10 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}
