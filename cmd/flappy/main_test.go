package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// recordingFile is a log file that remembers whether it was closed.
type recordingFile struct {
	bytes.Buffer
	closed bool
}

func (f *recordingFile) Close() error {
	f.closed = true
	return nil
}

func useLogFile(t *testing.T, f *recordingFile) {
	t.Helper()
	prevOpen, prevFile, prevLevel := openLogFile, flagLogFile, flagLogLevel
	openLogFile = func(string) (io.WriteCloser, error) { return f, nil }
	flagLogFile, flagLogLevel = "flappy.log", "info"
	t.Cleanup(func() {
		openLogFile, flagLogFile, flagLogLevel = prevOpen, prevFile, prevLevel
	})
}

func TestWithLoggerClosesLogFile(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"success", nil, 0},
		{"failure", errors.New("boom"), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := &recordingFile{}
			useLogFile(t, f)
			var stderr bytes.Buffer

			code := withLogger(io.Discard, &stderr, func(l *log.Logger) error {
				if f.closed {
					t.Error("log file closed before the command ran")
				}
				l.Info("running")
				return tc.err
			})

			if code != tc.wantCode {
				t.Errorf("exit code = %d, expected %d", code, tc.wantCode)
			}
			if !f.closed {
				t.Error("log file was not closed")
			}
			if !strings.Contains(f.String(), "running") {
				t.Errorf("log file missing entry: %q", f.String())
			}
			if tc.err != nil && !strings.Contains(stderr.String(), "Error: boom") {
				t.Errorf("stderr = %q, expected the command error", stderr.String())
			}
			if tc.err == nil && stderr.Len() != 0 {
				t.Errorf("stderr = %q, expected nothing", stderr.String())
			}
		})
	}
}

func TestWithLoggerRejectsBadLevel(t *testing.T) {
	prev := flagLogLevel
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = prev })

	var stderr bytes.Buffer
	ran := false
	code := withLogger(io.Discard, &stderr, func(*log.Logger) error {
		ran = true
		return nil
	})
	if code != 1 || ran {
		t.Errorf("code = %d, ran = %v; expected 1 and no run", code, ran)
	}
	if !strings.Contains(stderr.String(), "invalid --log-level") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
