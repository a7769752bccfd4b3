//go:build fastfloat_softfloat

package fastfloat

const softFloat = true
