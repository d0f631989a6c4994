package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggingDiscardsWithoutDebug(t *testing.T) {
	logFile := setupLogging(false)
	if logFile != nil {
		logFile.Close()
		t.Fatal("Expected no log file without -debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be discarded, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); err == nil {
		t.Errorf("Log directory %q should not be created without -debug", logDir)
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	defer os.RemoveAll(logDir)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected a log file with -debug")
	}
	defer logFile.Close()
	defer log.SetOutput(io.Discard)

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Fatal("Log output must not go to the terminal")
	}

	log.Println("key pressed")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)
	for _, want := range []string{"babykeys started", "key pressed"} {
		if !strings.Contains(content, want) {
			t.Errorf("Log file missing %q:\n%s", want, content)
		}
	}
}

func TestSetupLoggingRotatesLargeFile(t *testing.T) {
	defer os.RemoveAll(logDir)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create log directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write oversized log: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected a log file after rotation")
	}
	defer logFile.Close()
	defer log.SetOutput(io.Discard)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read log directory: %v", err)
	}
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "babykeys-") {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("Expected one rotated log, found %d", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("New log should start small, got %d bytes", info.Size())
	}
}

func TestRotateLogReportsFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone", logFileName)
	if err := rotateLog(missing); err == nil {
		t.Error("Expected an error when the log can be neither renamed nor truncated")
	}
}

func TestRotateLogRenames(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, []byte("old"), 0644); err != nil {
		t.Fatalf("Failed to write log: %v", err)
	}

	if err := rotateLog(logPath); err != nil {
		t.Fatalf("rotateLog: %v", err)
	}
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Error("Expected the old log to be moved aside")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "babykeys-") {
		t.Errorf("Expected one rotated file, got %v", entries)
	}
}
