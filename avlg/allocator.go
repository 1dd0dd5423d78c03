// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

import (
	"sync"

	"github.com/bitmark-inc/avlg/fault"
)

// a node in the tree
type node struct {
	left   *node // left sub-tree
	right  *node // right sub-tree
	key    Item  // key part for ordering
	height int   // 0 for a leaf
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// Statistics - allocator counters shared by all trees
type Statistics struct {
	Total int `json:"total"` // nodes ever created
	Free  int `json:"free"`  // reclaimed nodes waiting for reuse
}

// AllocatorStatistics - snapshot of the node allocator
func AllocatorStatistics() Statistics {
	m.Lock()
	defer m.Unlock()
	return Statistics{
		Total: totalNodes,
		Free:  freeNodes,
	}
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(key Item) *node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			m.Unlock()
			fault.Panicf("node pool corrupt: empty list with free count: %d", freeNodes)
		}
		totalNodes += 1
		m.Unlock()
		return &node{
			key:    key,
			height: 0,
		}
	}
	p := pool
	pool = p.right
	p.key = key
	p.height = 0
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(n *node) {
	m.Lock()
	n.right = pool // use as free list pointer

	n.left = nil
	n.key = nil
	n.height = 0
	freeNodes += 1

	pool = n
	m.Unlock()
}
