package diagnostics

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tristendillon/pydeps/core/logger"
)

func TestCollector(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for _, d := range []Diagnostic{
		{Severity: SeverityWarning, Kind: KindUnresolvedImport, File: "b.py", Specifier: "zeta"},
		{Severity: SeverityWarning, Kind: KindUnresolvedImport, File: "b.py", Specifier: "alpha"},
		{Severity: SeverityError, Kind: KindParseError, File: "a.py"},
		{Severity: SeverityError, Kind: KindIOFailure, File: "c.py"},
	} {
		wg.Add(1)
		go func(d Diagnostic) {
			defer wg.Done()
			c.Report(d)
		}(d)
	}
	wg.Wait()

	got := c.Diagnostics()
	assert.Len(t, got, 4)
	assert.Equal(t, "a.py", got[0].File)
	assert.Equal(t, "alpha", got[1].Specifier)
	assert.Equal(t, "zeta", got[2].Specifier)
	assert.Equal(t, "c.py", got[3].File)

	assert.Equal(t, Summary{ParseErrors: 1, UnresolvedImports: 2, IOFailures: 1}, c.Summary())
	assert.Equal(t, 4, c.Summary().Total())

	c.Reset()
	assert.Zero(t, c.Len())
}

func TestMultiSink(t *testing.T) {
	a, b := NewCollector(), NewCollector()
	var seen []Kind

	sink := MultiSink{a, nil, b, SinkFunc(func(d Diagnostic) { seen = append(seen, d.Kind) })}
	sink.Report(Diagnostic{Kind: KindIOFailure, File: "x.py"})

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, []Kind{KindIOFailure}, seen)
	Discard.Report(Diagnostic{})
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Severity: SeverityWarning, Kind: KindUnresolvedImport, File: "main.py", Specifier: "foo", Message: "could not resolve import"}
	assert.Equal(t, "warning UnresolvedImport: main.py (foo): could not resolve import", d.String())

	d = Diagnostic{Severity: SeverityError, Kind: KindParseError, File: "bad.py", Message: "syntax error"}
	assert.Equal(t, "error ParseError: bad.py: syntax error", d.String())
}

func TestLogSinkLoudness(t *testing.T) {
	var buf bytes.Buffer
	logger.SetWriterForAll(&buf)
	logger.SetColor(false)
	logger.SetLevel(logger.WARN)
	t.Cleanup(func() {
		logger.SetWriterForAll(os.Stderr)
		logger.SetColor(true)
		logger.SetVerbose(false)
	})

	unresolved := Diagnostic{Severity: SeverityWarning, Kind: KindUnresolvedImport, File: "main.py", Specifier: "gone"}

	LogSink{}.Report(unresolved)
	assert.Empty(t, buf.String())

	LogSink{Loud: true}.Report(unresolved)
	assert.Contains(t, buf.String(), "WARN  warning UnresolvedImport: main.py (gone)")

	buf.Reset()
	LogSink{}.Report(Diagnostic{Severity: SeverityError, Kind: KindIOFailure, File: "x.py", Message: "denied"})
	assert.Contains(t, buf.String(), "ERROR error IOFailure: x.py: denied")
}
