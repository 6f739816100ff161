package qsim

import "math/rand/v2"

/*
Sampler is the source of randomness for measurement. Float64 must return a
uniform sample in [0, 1). *rand.Rand from math/rand/v2 satisfies it.
*/
type Sampler interface {
	Float64() float64
}

type globalSampler struct{}

func (globalSampler) Float64() float64 { return rand.Float64() }

// DefaultSampler returns a Sampler backed by the process-wide generator.
func DefaultSampler() Sampler {
	return globalSampler{}
}

/*
NewSeededSampler returns a deterministic Sampler. Two samplers built from the
same seed produce the same sequence, which makes measurement outcomes
reproducible in tests. It is not safe for concurrent use.
*/
func NewSeededSampler(seed uint64) Sampler {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
