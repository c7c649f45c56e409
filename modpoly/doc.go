// Package modpoly implements dense integer polynomials reduced modulo a
// positive integer p. It evaluates polynomials at a point, searches the
// residues 0..p-1 for roots, and divides out the linear factors (x - r)
// those roots give by synthetic division.
//
// Coefficients are arbitrary-precision integers stored lowest degree first.
// Every operation returns freshly allocated values and leaves its inputs
// untouched, so polynomials may be shared freely between goroutines.
//
// The root search is exhaustive and runs in O(p * degree). It is bounded by
// SearchConfig.MaxModulus and refuses larger moduli with ErrRange. Division
// by a factor found by the search is exact when p is prime; for composite p
// the results are still computed but no longer describe a factorization.
package modpoly
