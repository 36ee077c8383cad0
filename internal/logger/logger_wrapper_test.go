package logger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leandrodaf/pcspkr/sdk/contracts"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(t *testing.T) (contracts.Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLoggerWithCore(core), logs
}

func TestLevelFiltering(t *testing.T) {
	log, logs := observed(t)

	log.Debug("hidden")
	log.Info("shown")
	if logs.Len() != 1 || logs.All()[0].Message != "shown" {
		t.Fatalf("default level should drop debug, got %v", logs.All())
	}

	log.SetLevel(contracts.DebugLevel)
	log.Debug("now shown")
	if logs.FilterMessage("now shown").Len() != 1 {
		t.Fatal("debug entry missing after SetLevel(DebugLevel)")
	}

	log.SetLevel(contracts.ErrorLevel)
	log.Warn("dropped")
	log.Error("kept")
	if logs.FilterMessage("dropped").Len() != 0 {
		t.Error("warn entry should be filtered at ErrorLevel")
	}
	if logs.FilterMessage("kept").Len() != 1 {
		t.Error("error entry missing at ErrorLevel")
	}
}

func TestFieldsAreStructured(t *testing.T) {
	log, logs := observed(t)
	werr := errors.New("boom")

	log.Info("tone",
		log.Field().Int32("hz", 440),
		log.Field().String("path", "/dev/null"),
		log.Field().Error("error", werr))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["hz"] != int32(440) {
		t.Errorf("hz = %v, want 440", ctx["hz"])
	}
	if ctx["path"] != "/dev/null" {
		t.Errorf("path = %v, want /dev/null", ctx["path"])
	}
	if ctx["error"] != "boom" {
		t.Errorf("error = %v, want boom", ctx["error"])
	}
}

func TestFileDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pcspkr.log")
	log := NewZapLogger()
	log.SetDestination(contracts.FileLog, path)
	log.Info("to file", log.Field().Float64("hz", 523.3))
	if err := log.(*ZapLogger).Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"to file"`) {
		t.Errorf("log file missing entry: %s", data)
	}
	if !strings.Contains(string(data), `"hz":523.3`) {
		t.Errorf("log file missing field: %s", data)
	}
}

func openFDs(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skipf("cannot list open descriptors: %v", err)
	}
	return len(entries)
}

func TestFileDestinationReleasesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	before := openFDs(t)

	log := NewZapLogger()
	for i := 0; i < 20; i++ {
		log.SetDestination(contracts.FileLog, filepath.Join(dir, fmt.Sprintf("run-%d.log", i)))
		log.Info("cycle", log.Field().Int("n", i))
	}
	if err := log.(*ZapLogger).Close(); err != nil {
		t.Fatal(err)
	}

	if after := openFDs(t); after > before+2 {
		t.Errorf("open descriptors grew from %d to %d", before, after)
	}
	data, err := os.ReadFile(filepath.Join(dir, "run-0.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"n":0`) {
		t.Errorf("first log file missing its entry: %s", data)
	}
}

func TestCloseWithoutFileIsNoop(t *testing.T) {
	log := NewZapLogger().(*ZapLogger)
	if err := log.Close(); err != nil {
		t.Errorf("Close on stderr logger = %v", err)
	}
}

func TestFileDestinationWithoutPathKeepsLogger(t *testing.T) {
	log, logs := observed(t)
	log.SetDestination(contracts.FileLog)
	log.Info("still here")
	if logs.FilterMessage("still here").Len() != 1 {
		t.Error("logger output should be unchanged")
	}
	if logs.FilterMessage("file log destination requested without a path").Len() != 1 {
		t.Error("missing warning for empty file path")
	}
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	log.SetLevel(contracts.DebugLevel)
	log.Debug("nothing", log.Field().Bool("ok", true))
	log.Error("nothing")
}
