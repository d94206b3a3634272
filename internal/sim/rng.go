package sim

// LCG is the shared linear congruential generator behind every synthetic
// series. The recurrence (multiplier 9301, increment 49297, modulus 233280)
// must stay bit-exact: golden-output tests depend on reproducing the same
// sequence for the same seed.
type LCG struct {
	seed int64
}

func NewLCG(seed int64) *LCG {
	return &LCG{seed: seed}
}

// Next advances the generator and returns a value in [0,1).
func (g *LCG) Next() float64 {
	g.seed = (g.seed*9301 + 49297) % 233280
	return float64(g.seed) / 233280
}
