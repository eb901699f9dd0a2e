package engine

import "sync"

// Scenario is a named template describing the starting conditions of a new
// simulation session.
type Scenario struct {
	Name        string
	Summary     string
	Colonists   int
	StartSeason string
}

// ScenarioRegistry holds the built-in scenarios plus any injected at runtime
// (mods, test fixtures).
type ScenarioRegistry struct {
	mu       sync.Mutex
	external []Scenario
}

// NewScenarioRegistry creates a registry over the built-in catalog.
func NewScenarioRegistry() *ScenarioRegistry {
	return &ScenarioRegistry{}
}

// SetExternal replaces the injected scenario list.
func (r *ScenarioRegistry) SetExternal(scenarios []Scenario) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.external = append([]Scenario(nil), scenarios...)
}

// All returns the built-in scenarios followed by any injected ones.
func (r *ScenarioRegistry) All() []Scenario {
	r.mu.Lock()
	defer r.mu.Unlock()

	base := BuiltinScenarios()
	if len(r.external) == 0 {
		return base
	}
	out := make([]Scenario, 0, len(base)+len(r.external))
	out = append(out, base...)
	out = append(out, r.external...)
	return out
}

// FindByName looks up a scenario by exact name match.
func (r *ScenarioRegistry) FindByName(name string) (Scenario, bool) {
	for _, sc := range r.All() {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}
