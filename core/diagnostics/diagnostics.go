// Package diagnostics carries non-fatal analysis events (parse failures,
// unresolved imports, unreadable files) from the engine to whoever is
// listening: the logger, the run summary, or a test.
package diagnostics

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tristendillon/pydeps/core/logger"
)

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

type Kind string

const (
	KindParseError       Kind = "ParseError"
	KindUnresolvedImport Kind = "UnresolvedImport"
	KindIOFailure        Kind = "IOFailure"
)

// Diagnostic is one (severity, file, message) record.
type Diagnostic struct {
	Severity  Severity `json:"severity"`
	Kind      Kind     `json:"kind"`
	File      string   `json:"file"`
	Specifier string   `json:"specifier,omitempty"`
	Message   string   `json:"message"`
}

func (d Diagnostic) String() string {
	if d.Specifier != "" {
		return fmt.Sprintf("%s %s: %s (%s): %s", d.Severity, d.Kind, d.File, d.Specifier, d.Message)
	}
	return fmt.Sprintf("%s %s: %s: %s", d.Severity, d.Kind, d.File, d.Message)
}

// Sink receives diagnostics. Implementations used by the parallel scan must
// be safe for concurrent use.
type Sink interface {
	Report(d Diagnostic)
}

// Discard drops every diagnostic.
var Discard Sink = discard{}

type discard struct{}

func (discard) Report(Diagnostic) {}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

// MultiSink fans a diagnostic out to every sink in order.
type MultiSink []Sink

func (m MultiSink) Report(d Diagnostic) {
	for _, s := range m {
		if s != nil {
			s.Report(d)
		}
	}
}

// LogSink writes diagnostics through the global logger. Unresolved imports
// are routine, so warnings go to debug unless Loud is set.
type LogSink struct {
	Loud bool
}

func (l LogSink) Report(d Diagnostic) {
	switch {
	case d.Severity >= SeverityError:
		logger.Error("%s", d)
	case d.Severity == SeverityWarning && l.Loud:
		logger.Warn("%s", d)
	default:
		logger.Debug("%s", d)
	}
}

// Collector accumulates diagnostics for later summarizing.
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.items = append(c.items, d)
	c.mu.Unlock()
}

// Diagnostics returns a copy in a stable order (file, kind, specifier).
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	c.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Specifier < out[j].Specifier
	})
	return out
}

func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Collector) Reset() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// Summary counts diagnostics per kind.
type Summary struct {
	ParseErrors       int `json:"parse_errors"`
	UnresolvedImports int `json:"unresolved_imports"`
	IOFailures        int `json:"io_failures"`
}

func (s Summary) Total() int {
	return s.ParseErrors + s.UnresolvedImports + s.IOFailures
}

func (c *Collector) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	var s Summary
	for _, d := range c.items {
		switch d.Kind {
		case KindParseError:
			s.ParseErrors++
		case KindUnresolvedImport:
			s.UnresolvedImports++
		case KindIOFailure:
			s.IOFailures++
		}
	}
	return s
}
