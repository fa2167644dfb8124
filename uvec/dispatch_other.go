//go:build !amd64 && !arm64

package uvec

func init() {
	// Other architectures fall back to the scalar tier. The register
	// width stays at 16 bytes so lane counts are consistent across
	// builds; every operation takes the emulated path.
	active = selectTier(TierScalar)
}
