package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/babykeys/constants"
	"github.com/pkg/errors"
)

const (
	logDir      = constants.LogDir
	logFileName = constants.LogFileName
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to logs/babykeys.log when debug is set
// and discards it otherwise. A log file over maxLogSize is renamed with a timestamp suffix first
// The terminal is in raw mode while the game runs, so nothing is ever logged to stdout or stderr
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		if err := rotateLog(logPath); err != nil {
			log.SetOutput(io.Discard)
			return nil
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("babykeys started (pid %d)", os.Getpid())
	return f
}

// rotateLog moves logPath aside with a timestamp suffix, truncating it in place when the rename fails
func rotateLog(logPath string) error {
	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(filepath.Dir(logPath), fmt.Sprintf("babykeys-%s.log", stamp))
	if err := os.Rename(logPath, rotated); err != nil {
		if terr := os.Truncate(logPath, 0); terr != nil {
			return errors.Wrapf(terr, "rotate %s (rename: %v)", logPath, err)
		}
	}
	return nil
}
