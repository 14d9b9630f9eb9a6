package utils

const (
	// ZEROTOL is the magnitude below which a spanwise coordinate sits on the symmetry plane
	ZEROTOL = 1.e-16
	// SLICETOL matches a slice location against a tabulated one
	SLICETOL = 1.e-5
)
