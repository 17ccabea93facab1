package model

import "strings"

// TriggerKind classifies the CI event that starts one evaluation
type TriggerKind string

const (
	TriggerBranchPush  TriggerKind = "branch-push"
	TriggerTagPush     TriggerKind = "tag-push"
	TriggerPullRequest TriggerKind = "pull-request"
)

const (
	refBranchPrefix = "refs/heads/"
	refTagPrefix    = "refs/tags/"
)

// Trigger describes one CI event: what kind of push it was, which ref it
// targeted, and the revision pair to diff. It is the complete input of an
// evaluation; nothing is read from ambient environment state.
type Trigger struct {
	Kind    TriggerKind
	Ref     string // short ref name (branch or tag), refs/ prefix stripped
	BaseRev string
	HeadRev string
}

// NewPushTrigger builds a Trigger from a push event. The ref decides the
// kind: refs/tags/* is a tag push, anything else a branch push.
func NewPushTrigger(ref, baseRev, headRev string) Trigger {
	kind := TriggerBranchPush
	if strings.HasPrefix(ref, refTagPrefix) {
		kind = TriggerTagPush
	}

	return Trigger{
		Kind:    kind,
		Ref:     ShortRef(ref),
		BaseRev: baseRev,
		HeadRev: headRev,
	}
}

// ShortRef strips the refs/heads/ or refs/tags/ prefix from a full ref name
func ShortRef(ref string) string {
	ref = strings.TrimPrefix(ref, refBranchPrefix)
	ref = strings.TrimPrefix(ref, refTagPrefix)
	return ref
}
