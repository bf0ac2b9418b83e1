// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package log wires Apex logging with a compact single-line handler. The
// level comes from the FILTQ_LOG env variable (debug, info, warn, error,
// fatal; default error).
package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// InitLogger sets up Apex with the line handler and the FILTQ_LOG level.
func InitLogger() {
	var apexLevel log.Level
	switch strings.ToLower(os.Getenv("FILTQ_LOG")) {
	case "debug":
		apexLevel = log.DebugLevel
	case "info":
		apexLevel = log.InfoLevel
	case "warn":
		apexLevel = log.WarnLevel
	case "fatal":
		apexLevel = log.FatalLevel
	default:
		apexLevel = log.ErrorLevel
	}
	log.SetHandler(&LineHandler{})
	log.SetLevel(apexLevel)
}

// LineHandler formats log entries as "timestamp L message" lines on stderr.
type LineHandler struct{}

// HandleLog implements the log.Handler interface.
func (h *LineHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := "?"
	switch e.Level {
	case log.DebugLevel:
		level = "D"
	case log.InfoLevel:
		level = "I"
	case log.WarnLevel:
		level = "W"
	case log.ErrorLevel:
		level = "E"
	case log.FatalLevel:
		level = "F"
	}
	fmt.Fprintf(os.Stderr, "%s %s %s\n", timestamp, level, e.Message)
	return nil
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}
