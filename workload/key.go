// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"math/rand"
	"strconv"

	"github.com/bitmark-inc/avlg/fault"
)

// Key - integer tree key
type Key int

// Compare - ordering for the tree
func (k Key) Compare(x interface{}) int {
	j := x.(Key)
	switch {
	case k < j:
		return -1
	case k > j:
		return 1
	default:
		return 0
	}
}

// String - decimal representation
func (k Key) String() string {
	return strconv.Itoa(int(k))
}

// key orderings
const (
	Ascending  = "ascending"
	Descending = "descending"
	Random     = "random"
	ZigZag     = "zigzag"
)

// Keys - generate count keys in the order given by pattern
//
// random keys are drawn from [0, 2*count) so may repeat
func Keys(pattern string, count int, seed int64) ([]Key, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidKeyCount
	}

	keys := make([]Key, count)
	switch pattern {
	case Ascending:
		for i := range keys {
			keys[i] = Key(i)
		}
	case Descending:
		for i := range keys {
			keys[i] = Key(count - 1 - i)
		}
	case Random:
		r := rand.New(rand.NewSource(seed))
		for i := range keys {
			keys[i] = Key(r.Intn(2 * count))
		}
	case ZigZag:
		low := 0
		high := count - 1
		for i := range keys {
			if 0 == i%2 {
				keys[i] = Key(low)
				low += 1
			} else {
				keys[i] = Key(high)
				high -= 1
			}
		}
	default:
		return nil, fault.ErrInvalidPattern
	}
	return keys, nil
}
