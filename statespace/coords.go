package statespace

// CoordSource is implemented by models that name their states, observations and shocks.
type CoordSource interface {
	StateNames() []string
	ObservedStates() []string
	ShockNames() []string
}

// DefaultCoords maps every dimension name to the labels along it. The auxiliary dimensions
// carry the same labels as their primary, for the second axis of square matrices.
func DefaultCoords(src CoordSource) map[string][]string {
	states := src.StateNames()
	observed := src.ObservedStates()
	shocks := src.ShockNames()

	return map[string][]string{
		AllStateDim:    states,
		AllStateAuxDim: states,
		ObsStateDim:    observed,
		ObsStateAuxDim: observed,
		ShockDim:       shocks,
		ShockAuxDim:    shocks,
	}
}
