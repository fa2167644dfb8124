package uvec

// Cleanup releases per-iteration vector register state. Some tiers pay
// a transition penalty when wide and narrow instruction forms mix
// (AVX-SSE on x86, cleared by vzeroupper); loops that interleave vector
// groups with scalar code call this after every group. On the tiers
// this package models in pure Go it is a no-op, but the call sites are
// part of the engine contract so native backends can hook in.
func Cleanup() {}
