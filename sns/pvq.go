/*
DESCRIPTION
  pvq.go implements pyramid-vector (MPVQ) enumeration and de-enumeration:
  a bijection between [0, V(n,k)) and the integer vectors of dimension n
  with L1 norm k, where V is the combinatorial size table built in
  tables.PVQSize. This is the "MPVQ de-enumeration" step spec.md §4.3
  describes, generalised into standalone Enumerate/Deenumerate
  functions so the SNS round-trip invariant in spec.md §8 can be tested
  directly.

AUTHOR
  AusOcean Audio Team <audio@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sns

import "github.com/ausocean/lc3/tables"

// vSize returns V(n,k), the number of integer vectors of dimension n with
// L1 norm k, extending tables.PVQSize with its n==0 base case.
func vSize(n, k int) uint64 {
	if k < 0 {
		return 0
	}
	if n == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	if n > len(tables.PVQSize)-1 || k > len(tables.PVQSize[0])-1 {
		return 0
	}
	return tables.PVQSize[n][k]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Enumerate maps a dimension-n, L1-norm-k integer vector to its unique
// index in [0, V(n,k)), using lexicographic (ascending coordinate tuple)
// ordering.
func Enumerate(vec []int, k int) uint64 {
	n := len(vec)
	var idx uint64
	remK := k
	for i := 0; i < n; i++ {
		nRem := n - i - 1
		v := vec[i]
		for w := -remK; w < v; w++ {
			idx += vSize(nRem, remK-abs(w))
		}
		remK -= abs(v)
	}
	return idx
}

// Deenumerate is the inverse of Enumerate: given dimension n, L1 norm k
// and an index in [0, V(n,k)), it reconstructs the unique vector.
func Deenumerate(n, k int, idx uint64) []int {
	vec := make([]int, n)
	remK := k
	for i := 0; i < n; i++ {
		nRem := n - i - 1
		for w := -remK; w <= remK; w++ {
			c := vSize(nRem, remK-abs(w))
			if idx < c {
				vec[i] = w
				remK -= abs(w)
				break
			}
			idx -= c
		}
	}
	return vec
}
