package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/drover/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestRegistry_Load_Default(t *testing.T) {
	cfg := config.Registry{}

	registry, err := cfg.Load()
	gt.NoError(t, err)
	gt.Number(t, len(registry.Units)).Equal(4)
	gt.Value(t, registry.SharedPrefix).Equal("shared/")
}

func TestRegistry_Load_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yml")
	content := `
shared_prefix: lib/
units:
  - name: frontend
    path: apps/frontend/
  - name: backend
    path: apps/backend/
`
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := config.Registry{Path: path}

	registry, err := cfg.Load()
	gt.NoError(t, err)
	gt.Value(t, registry.Names()).Equal([]string{"frontend", "backend"})
	gt.Value(t, registry.SharedPrefix).Equal("lib/")
	gt.Value(t, registry.Units[0].Path).Equal("apps/frontend/")
}

func TestRegistry_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not yaml",
			content: "{not: [valid yaml",
		},
		{
			name: "duplicate units",
			content: `
units:
  - name: svc
    path: a/
  - name: svc
    path: b/
`,
		},
		{
			name:    "no units",
			content: `shared_prefix: shared/`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "units.yml")
			gt.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			cfg := config.Registry{Path: path}
			_, err := cfg.Load()
			gt.Error(t, err)
		})
	}
}

func TestRegistry_Load_MissingFile(t *testing.T) {
	cfg := config.Registry{Path: filepath.Join(t.TempDir(), "missing.yml")}
	_, err := cfg.Load()
	gt.Error(t, err)
}
