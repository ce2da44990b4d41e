package statespace

import "slices"

// Variable is a named array in an inference result, described by its dimension names.
type Variable struct {
	Dims []string
}

// Dataset maps variable names to their description.
type Dataset map[string]Variable

// InferenceData holds the sections of a fitted-model result that exogenous data can live in.
// Posterior variables lead with the chain and draw dimensions.
type InferenceData struct {
	Posterior    Dataset
	ConstantData Dataset
	MutableData  Dataset
}

// posteriorSampleDims is the number of leading chain/draw dimensions on posterior variables.
const posteriorSampleDims = 2

// ExogDims returns the dimension names of an exogenous variable, looking in the posterior,
// then the constant data, then the mutable data. It reports false if no section holds it.
func ExogDims(name string, idata *InferenceData) ([]string, bool) {
	if idata == nil {
		return nil, false
	}
	if v, ok := idata.Posterior[name]; ok {
		if len(v.Dims) <= posteriorSampleDims {
			return []string{}, true
		}
		return slices.Clone(v.Dims[posteriorSampleDims:]), true
	}
	if v, ok := idata.ConstantData[name]; ok {
		return slices.Clone(v.Dims), true
	}
	if v, ok := idata.MutableData[name]; ok {
		return slices.Clone(v.Dims), true
	}
	return nil, false
}
