package model

// Environment is the deployment target of a release
type Environment string

const (
	EnvNone       Environment = ""
	EnvStaging    Environment = "staging"
	EnvProduction Environment = "production"
)

// VersionLatest is the version label for branch pushes to the primary
// branch; tag pushes use the tag name instead.
const VersionLatest = "latest"

// ReleasePlan is the planner's decision for one evaluation: which units to
// release, under which version label, into which environment. A plan is a
// pure function of the trigger and the changed-path set.
type ReleasePlan struct {
	Version     string
	Environment Environment
	Units       []Unit
	NoOp        bool   // trigger itself demands no deployment (PR, side branch)
	Reason      string // human explanation for a plan that executes nothing
}

// ShouldExecute reports whether the executor has anything to do. An empty
// unit set on a primary-branch push is a successful run with zero builds.
func (p *ReleasePlan) ShouldExecute() bool {
	return !p.NoOp && len(p.Units) > 0
}

// UnitNames returns the effective unit names in plan order
func (p *ReleasePlan) UnitNames() []string {
	names := make([]string, 0, len(p.Units))
	for _, u := range p.Units {
		names = append(names, u.Name)
	}
	return names
}
