// Package classify decides whether an import specifier names an external
// (standard library or third-party) module or a project module.
package classify

import "strings"

type Option func(*Classifier)

// WithStdlib adds standard-library names on top of the bundled table.
func WithStdlib(names ...string) Option {
	return func(c *Classifier) { addAll(c.stdlib, names) }
}

// WithThirdParty adds third-party package names on top of the bundled table.
func WithThirdParty(names ...string) Option {
	return func(c *Classifier) { addAll(c.thirdParty, names) }
}

// Classifier owns private copies of the lookup tables, so two analyses in
// one process never see each other's additions.
type Classifier struct {
	stdlib     map[string]struct{}
	thirdParty map[string]struct{}
}

func New(opts ...Option) *Classifier {
	c := &Classifier{
		stdlib:     make(map[string]struct{}, len(stdlibModules)),
		thirdParty: make(map[string]struct{}, len(thirdPartyModules)),
	}
	addAll(c.stdlib, stdlibModules)
	addAll(c.thirdParty, thirdPartyModules)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsExternal reports whether the first dotted segment of specifier is a known
// standard-library or third-party module.
func (c *Classifier) IsExternal(specifier string) bool {
	first := FirstSegment(specifier)
	if first == "" {
		return false
	}
	if _, ok := c.stdlib[first]; ok {
		return true
	}
	_, ok := c.thirdParty[first]
	return ok
}

func (c *Classifier) IsStdlib(specifier string) bool {
	_, ok := c.stdlib[FirstSegment(specifier)]
	return ok
}

func (c *Classifier) IsThirdParty(specifier string) bool {
	_, ok := c.thirdParty[FirstSegment(specifier)]
	return ok
}

// FirstSegment returns "a" for "a.b.c", ignoring leading relative dots.
func FirstSegment(specifier string) string {
	specifier = strings.TrimLeft(strings.TrimSpace(specifier), ".")
	if i := strings.IndexByte(specifier, '.'); i >= 0 {
		return specifier[:i]
	}
	return specifier
}

func addAll(set map[string]struct{}, names []string) {
	for _, name := range names {
		if name = FirstSegment(name); name != "" {
			set[name] = struct{}{}
		}
	}
}
