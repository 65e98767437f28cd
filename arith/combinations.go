// SPDX-License-Identifier: MIT

package arith

// ForEachCombination calls fn with every increasing k-subset of 0..n-1 in
// lexicographic order, stopping early when fn returns false. The slice passed
// to fn is reused between calls and must not be retained. Nothing is emitted
// when k < 0 or k > n; k = 0 emits the empty subset once.
// Complexity: O(C(n, k) · k).
func ForEachCombination(n, k int, fn func(idx []int) bool) {
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return
		}
		// advance the rightmost index that still has room
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
