package report

import (
	"embed"
	"fmt"
	"io"
	"path"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func getDefaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"trim":     strings.TrimSpace,
		"join":     strings.Join,
		"repeat":   strings.Repeat,
		"base":     path.Base,
		"add":      func(a, b int) int { return a + b },
		"seconds":  func(f float64) string { return fmt.Sprintf("%.2f", f) },
		"plural":   plural,
		"truncate": truncate,
	}
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

// truncate keeps the first n items and notes how many were dropped.
func truncate(n int, items []string) []string {
	if n <= 0 || len(items) <= n {
		return items
	}
	out := make([]string, n, n+1)
	copy(out, items[:n])
	return append(out, fmt.Sprintf("... and %d more", len(items)-n))
}

type TemplateEngine struct {
	funcMap template.FuncMap
}

func NewTemplateEngine() *TemplateEngine {
	return &TemplateEngine{funcMap: getDefaultFuncMap()}
}

func (te *TemplateEngine) AddFunc(name string, fn interface{}) {
	te.funcMap[name] = fn
}

// Render executes the embedded template name (without extension) into w.
func (te *TemplateEngine) Render(w io.Writer, name string, data interface{}) error {
	file := "templates/" + name + ".tmpl"
	content, err := templateFS.ReadFile(file)
	if err != nil {
		return fmt.Errorf("template %s not found: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(te.funcMap).Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return nil
}
