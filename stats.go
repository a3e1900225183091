package edgepipe

// Stats counts pipeline activity since the last reset.
type Stats struct {
	// Steps is the number of Step calls.
	Steps uint64

	// ValidIn is the number of steps with a valid input sample.
	ValidIn uint64

	// ValidOut is the number of steps with a valid output sample.
	ValidOut uint64

	// Edges is the number of valid output samples above the noise floor.
	Edges uint64

	// Saturated is the number of valid output samples clamped to 4095.
	Saturated uint64
}

// Add returns the element-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Steps:     s.Steps + o.Steps,
		ValidIn:   s.ValidIn + o.ValidIn,
		ValidOut:  s.ValidOut + o.ValidOut,
		Edges:     s.Edges + o.Edges,
		Saturated: s.Saturated + o.Saturated,
	}
}

// EdgeRatio returns the fraction of valid outputs that are edges.
func (s Stats) EdgeRatio() float64 {
	if s.ValidOut == 0 {
		return 0
	}
	return float64(s.Edges) / float64(s.ValidOut)
}
