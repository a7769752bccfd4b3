//go:build !fastfloat_softfloat

package fastfloat

// softFloat selects the integer-only exact path instead of native
// floating-point multiply and divide. Build with -tags fastfloat_softfloat
// on targets whose FPU keeps excess intermediate precision.
const softFloat = false
