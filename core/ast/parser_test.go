package ast

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, src string) []string {
	t.Helper()
	specs, err := NewImportParser().Extract(context.Background(), "test.py", []byte(src))
	require.NoError(t, err)
	return specs
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "plain import",
			src:  "import os\n",
			want: []string{"os"},
		},
		{
			name: "dotted and aliased imports",
			src:  "import a.b, c as d\nimport e.f as g\n",
			want: []string{"a.b", "c", "e.f"},
		},
		{
			name: "from import yields module only",
			src:  "from pkg.mod import x, y\n",
			want: []string{"pkg.mod"},
		},
		{
			name: "relative imports drop dots",
			src:  "from .sibling import x\nfrom ..pkg.mod import y\n",
			want: []string{"sibling", "pkg.mod"},
		},
		{
			name: "bare relative import yields nothing",
			src:  "from . import x\nfrom .. import y\n",
			want: nil,
		},
		{
			name: "future import",
			src:  "from __future__ import annotations\nimport util\n",
			want: []string{"__future__", "util"},
		},
		{
			name: "nested imports are included in source order",
			src: strings.Join([]string{
				"import first",
				"def f():",
				"    import inner",
				"class C:",
				"    from klass import thing",
				"try:",
				"    import fast",
				"except ImportError:",
				"    import slow",
				"if True:",
				"    import cond",
				"",
			}, "\n"),
			want: []string{"first", "inner", "klass", "fast", "slow", "cond"},
		},
		{
			name: "comments and strings are ignored",
			src:  "# import hidden\ns = \"import fake\"\ndoc = '''\nfrom nowhere import x\n'''\nimport real\n",
			want: []string{"real"},
		},
		{
			name: "parenthesized from import",
			src:  "from pkg import (\n    a,\n    b,\n)\n",
			want: []string{"pkg"},
		},
		{
			name: "no imports",
			src:  "x = 1\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extract(t, tt.src))
		})
	}
}

func TestExtractSyntaxError(t *testing.T) {
	_, err := NewImportParser().Extract(context.Background(), "bad.py", []byte("import ok\ndef broken(:\n    pass\n"))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "bad.py", perr.Path)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestExtractLimits(t *testing.T) {
	p := NewImportParser(WithMaxFileSize(8))
	_, err := p.Extract(context.Background(), "big.py", []byte("import something_long\n"))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = NewImportParser().Extract(context.Background(), "bin.py", []byte{0xff, 0xfe, 0x00})
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestExtractCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewImportParser().Extract(ctx, "a.py", []byte("import os\n"))
	assert.ErrorIs(t, err, context.Canceled)
}
