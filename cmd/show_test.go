package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tristendillon/pydeps/core/models"
)

func TestMatchFiles(t *testing.T) {
	m := models.DependencyMap{
		"app/views.py":      {"app/models.py"},
		"app/models.py":     {},
		"api/views.py":      {"app/models.py"},
		"app/views_test.py": {"app/views.py"},
	}

	assert.Equal(t, []string{"app/views.py"}, matchFiles(m, "app/views.py"))
	assert.Equal(t, []string{"app/views.py"}, matchFiles(m, "./app/views.py"))
	assert.Equal(t, []string{"api/views.py", "app/views.py", "app/views_test.py"}, matchFiles(m, "VIEWS"))
	assert.Empty(t, matchFiles(m, "nothing"))
}
