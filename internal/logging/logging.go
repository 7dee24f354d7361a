package logging

import (
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var (
	current Level
	out     io.Writer = os.Stderr

	debug   *log.Logger
	info    *log.Logger
	warning *log.Logger
	error   *log.Logger
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debug = log.New(ioutil.Discard, "D spritepack ", flags)
	info = log.New(ioutil.Discard, "I spritepack ", flags)
	warning = log.New(ioutil.Discard, "W spritepack ", flags)
	error = log.New(ioutil.Discard, "E spritepack ", flags)

	SetLevel(LevelWarning)
}

// ParseLevel maps a level name ("debug", "info", "warning", "error") to a
// Level. Unknown names disable logging.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warning", "warn":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelNone
	}
}

// SetLevel enables all loggers at or above the given level.
func SetLevel(l Level) {
	current = l
	apply()
}

// SetOutput redirects the enabled loggers to w.
func SetOutput(w io.Writer) {
	out = w
	apply()
}

func apply() {
	for lvl, logger := range []*log.Logger{debug, info, warning, error} {
		if Level(lvl) >= current {
			logger.SetOutput(out)
		} else {
			logger.SetOutput(ioutil.Discard)
		}
	}
}

func Debug(msg string, v ...interface{}) {
	debug.Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	info.Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	warning.Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	error.Printf(msg, v...)
}
