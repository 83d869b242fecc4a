package ast

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/tristendillon/pydeps/core/logger"
)

const (
	// DefaultMaxFileSize is the largest source file accepted (10MB).
	DefaultMaxFileSize = 10 * 1024 * 1024

	// Extension is the source file extension the engine looks for.
	Extension = ".py"

	// InitFile marks a directory as a package.
	InitFile = "__init__.py"
)

type Option func(*ImportParser)

// WithMaxFileSize overrides DefaultMaxFileSize. Non-positive values are ignored.
func WithMaxFileSize(bytes int64) Option {
	return func(p *ImportParser) {
		if bytes > 0 {
			p.maxFileSize = bytes
		}
	}
}

// ImportParser extracts import specifiers from Python source with the
// tree-sitter Python grammar. Each Extract call builds its own tree-sitter
// parser, so one ImportParser may be shared between goroutines.
type ImportParser struct {
	maxFileSize int64
}

func NewImportParser(opts ...Option) *ImportParser {
	p := &ImportParser{maxFileSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Extract returns the module specifiers imported by content, in source order.
//
// `import a.b, c as d` yields "a.b" and "c". `from x.y import z` yields only
// "x.y". Relative forms drop their leading dots (`from ..pkg import m` yields
// "pkg"); `from . import m` has no module part and yields nothing. Imports
// nested in functions, classes, conditionals and try blocks are included.
//
// Malformed source returns nil and a *ParseError.
func (p *ImportParser) Extract(ctx context.Context, path string, content []byte) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if int64(len(content)) > p.maxFileSize {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("%w: size %d exceeds limit %d", ErrFileTooLarge, len(content), p.maxFileSize)}
	}
	if !utf8.Valid(content) {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("%w: not valid UTF-8", ErrInvalidContent)}
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("%w: empty syntax tree", ErrSyntax)}
	}
	if root.HasError() {
		return nil, &ParseError{Path: path, Line: firstErrorLine(root), Err: ErrSyntax}
	}

	specifiers := collectImports(root, content)
	logger.Debug("Parsed %s: %d imports", path, len(specifiers))
	return specifiers, nil
}

// collectImports walks the tree in pre-order with an explicit stack.
func collectImports(root *sitter.Node, content []byte) []string {
	var specifiers []string
	stack := []*sitter.Node{root}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch node.Type() {
		case "import_statement":
			specifiers = append(specifiers, importNames(node, content)...)
			continue
		case "import_from_statement":
			if module := fromModule(node, content); module != "" {
				specifiers = append(specifiers, module)
			}
			continue
		case "future_import_statement":
			specifiers = append(specifiers, "__future__")
			continue
		case "string", "comment":
			continue
		}

		for i := int(node.NamedChildCount()) - 1; i >= 0; i-- {
			if child := node.NamedChild(i); child != nil {
				stack = append(stack, child)
			}
		}
	}

	return specifiers
}

// importNames handles `import a.b, c as d`.
func importNames(node *sitter.Node, content []byte) []string {
	var names []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "dotted_name":
			names = append(names, child.Content(content))
		case "aliased_import":
			if name := child.ChildByFieldName("name"); name != nil {
				names = append(names, name.Content(content))
			}
		}
	}
	return names
}

// fromModule returns the module part of `from <module> import ...` with
// relative dots removed.
func fromModule(node *sitter.Node, content []byte) string {
	module := node.ChildByFieldName("module_name")
	if module == nil {
		return ""
	}

	switch module.Type() {
	case "dotted_name":
		return module.Content(content)
	case "relative_import":
		for i := 0; i < int(module.NamedChildCount()); i++ {
			if child := module.NamedChild(i); child.Type() == "dotted_name" {
				return child.Content(content)
			}
		}
		return ""
	default:
		return strings.TrimLeft(module.Content(content), ".")
	}
}

func firstErrorLine(root *sitter.Node) int {
	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.IsError() || node.IsMissing() {
			return int(node.StartPoint().Row) + 1
		}
		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			if child := node.Child(i); child != nil && (child.HasError() || child.IsMissing()) {
				stack = append(stack, child)
			}
		}
	}
	return 0
}
