package usecase_test

import (
	"testing"

	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/drover/pkg/usecase"
)

func TestResolveImpact(t *testing.T) {
	registry := model.DefaultRegistry()

	tests := []struct {
		name    string
		changes []string
		want    []string
	}{
		{
			name:    "single service change",
			changes: []string{"services/user_service/src/x.py"},
			want:    []string{"user_service"},
		},
		{
			name: "multiple service changes",
			changes: []string{
				"services/user_service/src/x.py",
				"services/product_service/src/crud.py",
			},
			want: []string{"user_service", "product_service"},
		},
		{
			name:    "shared change fans out to all units",
			changes: []string{"shared/models/y.py"},
			want:    []string{"api_gateway", "user_service", "product_service", "notification_service"},
		},
		{
			name: "shared change supersedes partial matches",
			changes: []string{
				"services/user_service/src/x.py",
				"shared/db/session.py",
			},
			want: []string{"api_gateway", "user_service", "product_service", "notification_service"},
		},
		{
			name:    "unrelated change affects nothing",
			changes: []string{"README.md"},
			want:    nil,
		},
		{
			name:    "empty change set affects nothing",
			changes: nil,
			want:    nil,
		},
		{
			name:    "prefix match is path based, not substring",
			changes: []string{"docs/services/user_service/notes.md"},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			affected := usecase.ResolveImpact(model.NewChangeSet(tt.changes...), registry)

			var got []string
			for _, u := range affected {
				got = append(got, u.Name)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("affected = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("affected[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// The affected set must always be a subset of the registry, whatever paths
// the diff produces.
func TestResolveImpact_SubsetProperty(t *testing.T) {
	registry := model.DefaultRegistry()
	changes := model.NewChangeSet(
		"services/user_service/src/x.py",
		"services/unknown_service/src/y.py",
		"Makefile",
		"shared_notquite/z.py",
	)

	affected := usecase.ResolveImpact(changes, registry)
	for _, u := range affected {
		if _, ok := registry.Lookup(u.Name); !ok {
			t.Errorf("affected unit %q is not in the registry", u.Name)
		}
	}
}

func TestResolveImpact_ResultOrderFollowsRegistry(t *testing.T) {
	registry := model.DefaultRegistry()
	changes := model.NewChangeSet(
		"services/notification_service/src/worker.py",
		"services/api_gateway/src/main.py",
	)

	affected := usecase.ResolveImpact(changes, registry)
	if len(affected) != 2 {
		t.Fatalf("affected = %v, want 2 units", affected)
	}
	if affected[0].Name != "api_gateway" || affected[1].Name != "notification_service" {
		t.Errorf("affected order = %v, want registry order", affected)
	}
}
