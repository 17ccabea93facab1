package model_test

import (
	"testing"

	"github.com/m-mizutani/drover/pkg/domain/model"
)

func TestDefaultRegistry(t *testing.T) {
	registry := model.DefaultRegistry()

	if err := registry.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	want := []string{"api_gateway", "user_service", "product_service", "notification_service"}
	got := registry.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if registry.SharedPrefix != "shared/" {
		t.Errorf("SharedPrefix = %q, want shared/", registry.SharedPrefix)
	}
}

func TestRegistry_Validate(t *testing.T) {
	tests := []struct {
		name     string
		registry model.Registry
		wantErr  bool
	}{
		{
			name: "valid registry",
			registry: model.Registry{
				Units:        []model.Unit{{Name: "svc", Path: "services/svc/"}},
				SharedPrefix: "shared/",
			},
			wantErr: false,
		},
		{
			name:     "empty registry",
			registry: model.Registry{SharedPrefix: "shared/"},
			wantErr:  true,
		},
		{
			name: "duplicate unit names",
			registry: model.Registry{
				Units: []model.Unit{
					{Name: "svc", Path: "services/svc/"},
					{Name: "svc", Path: "services/other/"},
				},
			},
			wantErr: true,
		},
		{
			name: "empty unit name",
			registry: model.Registry{
				Units: []model.Unit{{Name: "", Path: "services/svc/"}},
			},
			wantErr: true,
		},
		{
			name: "empty path prefix",
			registry: model.Registry{
				Units: []model.Unit{{Name: "svc", Path: ""}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.registry.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	registry := model.DefaultRegistry()

	unit, ok := registry.Lookup("user_service")
	if !ok {
		t.Fatal("Lookup(user_service) not found")
	}
	if unit.Path != "services/user_service/" {
		t.Errorf("Path = %q, want services/user_service/", unit.Path)
	}

	if _, ok := registry.Lookup("missing"); ok {
		t.Error("Lookup(missing) should not be found")
	}
}
