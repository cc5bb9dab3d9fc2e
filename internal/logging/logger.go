// Package logging holds the logger used across dsviz packages.
package logging

import (
	"fmt"
	"log"
)

// Logger defines an interface for writing log messages.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger struct{}

// Infof implements the Logger.Infof interface.
func (DefaultLogger) Infof(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
}

// Errorf implements the Logger.Errorf interface.
func (DefaultLogger) Errorf(format string, args ...interface{}) {
	_ = log.Output(2, "error: "+fmt.Sprintf(format, args...))
}

type discardLogger struct{}

func (discardLogger) Infof(string, ...interface{})  {}
func (discardLogger) Errorf(string, ...interface{}) {}

// Discard drops every message.
var Discard Logger = discardLogger{}

// Prefixed returns a logger that prepends prefix to every message.
func Prefixed(l Logger, prefix string) Logger {
	if l == nil {
		l = Discard
	}
	return prefixLogger{l: l, prefix: prefix}
}

type prefixLogger struct {
	l      Logger
	prefix string
}

func (p prefixLogger) Infof(format string, args ...interface{}) {
	p.l.Infof(p.prefix+format, args...)
}

func (p prefixLogger) Errorf(format string, args ...interface{}) {
	p.l.Errorf(p.prefix+format, args...)
}
