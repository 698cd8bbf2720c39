package catalog

// TechModule describes a placeable technology module. Adjacency holds the
// bonus this module gains per orthogonal neighbor, keyed by the neighbor's
// module id; the placed module's own map is authoritative, the neighbor's
// map is never consulted for it.
type TechModule struct {
	ID                    string             `json:"id" yaml:"id"`
	Name                  string             `json:"name" yaml:"name"`
	Platform              string             `json:"platform" yaml:"platform"`
	BaseValue             float64            `json:"base_value" yaml:"base_value"`
	Adjacency             map[string]float64 `json:"adjacency,omitempty" yaml:"adjacency"`
	SuperchargeMultiplier float64            `json:"supercharge_multiplier" yaml:"supercharge_multiplier"`
	Tags                  []string           `json:"tags,omitempty" yaml:"tags"`
}

// EffectiveValue is a context-free proxy for how valuable the module is to
// place well: its base value under the best slot it could occupy.
func (m TechModule) EffectiveValue() float64 {
	mult := m.SuperchargeMultiplier
	if mult < 1 {
		mult = 1
	}
	return m.BaseValue * mult
}
