package report

import (
	"io"

	"github.com/tristendillon/pydeps/core/models"
)

// Summary is the data rendered after a run.
type Summary struct {
	Root      string
	MapPath   string
	Stats     models.Stats
	Systems   []models.System
	Unused    []string
	Cycles    [][]string
	MaxListed int
	ShowFiles bool
}

func WriteSummary(w io.Writer, s Summary) error {
	if s.MaxListed == 0 {
		s.MaxListed = 10
	}
	return NewTemplateEngine().Render(w, "summary", s)
}

// FileView is what `pydeps show` prints for one file.
type FileView struct {
	File       string
	Imports    []string
	ImportedBy []string
	Transitive bool
}

func WriteFileView(w io.Writer, v FileView) error {
	return NewTemplateEngine().Render(w, "file", v)
}
