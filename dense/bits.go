// Package dense: set-word scanning helpers.

package dense

import "math/bits"

// eachBit invokes fn for every set bit index in row, ascending.
func eachBit(row []uint64, fn func(v int)) {
	for i, word := range row {
		for word != 0 {
			fn(i*WordSize + bits.TrailingZeros64(word))
			word &= word - 1
		}
	}
}

// eachMaskedBit invokes fn for every index set in both row and mask.
func eachMaskedBit(row, mask []uint64, fn func(v int)) {
	var word uint64
	for i := range row {
		word = row[i] & mask[i]
		for word != 0 {
			fn(i*WordSize + bits.TrailingZeros64(word))
			word &= word - 1
		}
	}
}
