// Package testutil provides testing utilities for Bit-Operations.
//
// This package is intended for use in tests and benchmarks only. Its
// seeded RNG makes randomized property tests reproducible: a failing
// run can be replayed by pinning the seed.
//
//	rng := testutil.NewRNG(4711)
//	b := rng.Uint64()
package testutil
