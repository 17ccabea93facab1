package config_test

import (
	"testing"

	"github.com/m-mizutani/drover/pkg/cli/config"
	"github.com/m-mizutani/drover/pkg/domain/model"
)

func TestTrigger_Build(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Trigger
		wantKind model.TriggerKind
		wantRef  string
		wantErr  bool
	}{
		{
			name:     "push to branch",
			cfg:      config.Trigger{Event: "push", Ref: "refs/heads/main", BaseRev: "HEAD~1", HeadRev: "HEAD"},
			wantKind: model.TriggerBranchPush,
			wantRef:  "main",
		},
		{
			name:     "push to tag",
			cfg:      config.Trigger{Event: "push", Ref: "refs/tags/v1.2.0", BaseRev: "HEAD~1", HeadRev: "HEAD"},
			wantKind: model.TriggerTagPush,
			wantRef:  "v1.2.0",
		},
		{
			name:     "pull request",
			cfg:      config.Trigger{Event: "pull_request", Ref: "refs/heads/feature/x", BaseRev: "abc", HeadRev: "def"},
			wantKind: model.TriggerPullRequest,
			wantRef:  "feature/x",
		},
		{
			name:    "unknown event",
			cfg:     config.Trigger{Event: "workflow_dispatch", Ref: "refs/heads/main"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trigger, err := tt.cfg.Build()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Build() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if trigger.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", trigger.Kind, tt.wantKind)
			}
			if trigger.Ref != tt.wantRef {
				t.Errorf("Ref = %v, want %v", trigger.Ref, tt.wantRef)
			}
		})
	}
}
