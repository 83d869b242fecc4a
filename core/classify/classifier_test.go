package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExternal(t *testing.T) {
	c := New()

	tests := []struct {
		specifier string
		want      bool
	}{
		{"os", true},
		{"os.path", true},
		{"collections.abc", true},
		{"__future__", true},
		{"numpy", true},
		{"django.db.models", true},
		{"opencv", true},
		{"py2exe", true},
		{"pypy", true},
		{"util", false},
		{"myapp.models", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.specifier, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsExternal(tt.specifier))
		})
	}
}

func TestStdlibAndThirdPartyAreSeparate(t *testing.T) {
	c := New()
	assert.True(t, c.IsStdlib("json"))
	assert.False(t, c.IsThirdParty("json"))
	assert.True(t, c.IsThirdParty("requests"))
	assert.False(t, c.IsStdlib("requests"))
	assert.True(t, c.IsThirdParty("py2exe"))
	assert.False(t, c.IsStdlib("py2exe"))
}

func TestExtraNamesStayOnTheirInstance(t *testing.T) {
	extended := New(WithThirdParty("internal_sdk"), WithStdlib("_frozen"))
	plain := New()

	assert.True(t, extended.IsExternal("internal_sdk.client"))
	assert.True(t, extended.IsStdlib("_frozen"))
	assert.False(t, plain.IsExternal("internal_sdk.client"))
	assert.False(t, plain.IsExternal("_frozen"))
}

func TestFirstSegment(t *testing.T) {
	assert.Equal(t, "a", FirstSegment("a.b.c"))
	assert.Equal(t, "pkg", FirstSegment("..pkg.mod"))
	assert.Equal(t, "single", FirstSegment(" single "))
	assert.Equal(t, "", FirstSegment("..."))
}
