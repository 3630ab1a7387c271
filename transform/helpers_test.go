package transform_test

import "github.com/MichaelTJones/pcg"

func newRNG(seed uint64) *pcg.PCG32 {
	r := pcg.NewPCG32()
	r.Seed(seed, 0xda3e39cb94b95bdb)
	return r
}
