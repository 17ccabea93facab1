package usecase

import (
	"fmt"

	"github.com/m-mizutani/drover/pkg/domain/model"
)

// PlanRelease decides the version label, target environment and effective
// unit set for one trigger. Rules in priority order:
//
//  1. Tag push: full registry, version = tag name, production. The changed
//     paths are irrelevant; a tag is always a full release.
//  2. Branch push to the primary branch: resolver's affected set (possibly
//     empty), version "latest", staging.
//  3. Anything else (pull request, side branch): no-op, the executor must
//     not run.
func PlanRelease(trigger model.Trigger, affected []model.Unit, registry *model.Registry, primaryBranch string) *model.ReleasePlan {
	switch {
	case trigger.Kind == model.TriggerTagPush:
		return &model.ReleasePlan{
			Version:     trigger.Ref,
			Environment: model.EnvProduction,
			Units:       append([]model.Unit(nil), registry.Units...),
		}

	case trigger.Kind == model.TriggerBranchPush && trigger.Ref == primaryBranch:
		plan := &model.ReleasePlan{
			Version:     model.VersionLatest,
			Environment: model.EnvStaging,
			Units:       affected,
		}
		if len(affected) == 0 {
			plan.Reason = "no unit affected by changed paths"
		}
		return plan

	case trigger.Kind == model.TriggerPullRequest:
		return &model.ReleasePlan{
			NoOp:   true,
			Reason: "pull request triggers never deploy",
		}

	default:
		return &model.ReleasePlan{
			NoOp:   true,
			Reason: fmt.Sprintf("push to non-primary branch %q", trigger.Ref),
		}
	}
}
