// Package lol (log of location) is a leveled logger that prints a high
// precision timestamp and the source location of the log print to make
// tracing simpler. Higher levels can be filtered out for quieter output.
package lol

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

const (
	Off = iota
	Fatal
	Error
	Warn
	Info
	Debug
	Trace
)

var LevelNames = []string{"off", "fatal", "error", "warn", "info", "debug", "trace"}

type (
	// Ln prints a list of interfaces with spaces in between.
	Ln func(a ...any)
	// F prints like fmt.Printf surrounded by log details.
	F func(format string, a ...any)
	// S prints a spew.Sdump of the arguments.
	S func(a ...any)
	// Chk prints the error if there is one and returns whether it was nil.
	Chk func(e error) bool
	// Err constructs an error via fmt.Errorf, logs it, and returns it.
	Err func(format string, a ...any) error

	// LevelPrinter is the set of printers available on each log level.
	LevelPrinter struct {
		Ln
		F
		S
		Chk
		Err
	}

	// LevelSpec is the name and colorizer for a log level.
	LevelSpec struct {
		Name      string
		Colorizer func(a ...any) string
	}
)

var LevelSpecs = []LevelSpec{
	{"", func(a ...any) string { return "" }},
	{"FTL", color.New(color.BgRed, color.FgHiWhite).Sprint},
	{"ERR", color.New(color.FgHiRed).Sprint},
	{"WRN", color.New(color.FgHiYellow).Sprint},
	{"INF", color.New(color.FgHiGreen).Sprint},
	{"DBG", color.New(color.FgHiBlue).Sprint},
	{"TRC", color.New(color.FgHiMagenta).Sprint},
}

// Log is the set of log printers for each level.
type Log struct {
	F, E, W, I, D, T LevelPrinter
}

// Check is the set of error-check shortcuts for each level.
type Check struct {
	F, E, W, I, D, T Chk
}

// Errorf is the set of log-and-return error constructors for each level.
type Errorf struct {
	F, E, W, I, D, T Err
}

// Logger bundles the printers, checkers and error constructors.
type Logger struct {
	*Log
	*Check
	*Errorf
}

// Level is the level the logger is printing at.
var Level atomic.Int32

// Main is the main logger.
var Main = &Logger{}

func init() {
	Main.Log, Main.Check, Main.Errorf = New(os.Stderr)
	Level.Store(Info)
}

// SetLogLevel sets the log level of the logger from its string name.
func SetLogLevel(level string) {
	for i := range LevelNames {
		if level == LevelNames[i] {
			Level.Store(int32(i))
			return
		}
	}
	Level.Store(Info)
}

var msgCol = color.New(color.FgBlue).Sprint

func timestamp() string { return time.Now().Format("2006-01-02T15:04:05Z07:00.000 ") }

// GetLoc returns the code location of the caller.
func GetLoc(skip int) string {
	_, file, line, _ := runtime.Caller(skip)
	return fmt.Sprintf("%s:%d", file, line)
}

func prt(w io.Writer, l int32, text string) {
	fmt.Fprintf(w, "%s%s %s %s\n",
		msgCol(timestamp()),
		LevelSpecs[l].Colorizer(LevelSpecs[l].Name),
		text,
		msgCol(GetLoc(3)),
	)
}

// GetPrinter returns a LevelPrinter for one level writing to the provided
// io.Writer.
func GetPrinter(l int32, w io.Writer) LevelPrinter {
	return LevelPrinter{
		Ln: func(a ...any) {
			if Level.Load() < l {
				return
			}
			prt(w, l, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		},
		F: func(format string, a ...any) {
			if Level.Load() < l {
				return
			}
			prt(w, l, fmt.Sprintf(format, a...))
		},
		S: func(a ...any) {
			if Level.Load() < l {
				return
			}
			prt(w, l, spew.Sdump(a...))
		},
		Chk: func(e error) bool {
			if e == nil {
				return false
			}
			if Level.Load() >= l {
				prt(w, l, e.Error())
			}
			return true
		},
		Err: func(format string, a ...any) error {
			if Level.Load() >= l {
				prt(w, l, fmt.Sprintf(format, a...))
			}
			return fmt.Errorf(format, a...)
		},
	}
}

// New creates a logger writing to the provided io.Writer.
func New(w io.Writer) (l *Log, c *Check, e *Errorf) {
	l = &Log{
		F: GetPrinter(Fatal, w),
		E: GetPrinter(Error, w),
		W: GetPrinter(Warn, w),
		I: GetPrinter(Info, w),
		D: GetPrinter(Debug, w),
		T: GetPrinter(Trace, w),
	}
	c = &Check{F: l.F.Chk, E: l.E.Chk, W: l.W.Chk, I: l.I.Chk, D: l.D.Chk, T: l.T.Chk}
	e = &Errorf{F: l.F.Err, E: l.E.Err, W: l.W.Err, I: l.I.Err, D: l.D.Err, T: l.T.Err}
	return
}
