// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

import (
	"github.com/bitmark-inc/avlg/fault"
)

// Item - a key item must implement the Compare function
//
// Compare returns a negative value if the item is less than the
// argument, zero if equal and a positive value if greater
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root      *node
	count     int
	g         int    // maximum imbalance, fixed at creation
	rotations uint64 // single rotations since creation or Clear
}

// New - create an initially empty tree that tolerates an imbalance
// of up to maxImbalance at any node
func New(maxImbalance int) (*Tree, error) {
	if maxImbalance < 1 {
		return nil, fault.ErrInvalidMaxImbalance
	}
	return &Tree{
		root:  nil,
		count: 0,
		g:     maxImbalance,
	}, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return 0 == tree.count
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Limit - the maximum imbalance given to New
func (tree *Tree) Limit() int {
	return tree.g
}

// Height - height of the root node, -1 for an empty tree
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Rotations - number of single rotations performed, a double
// rotation counts as two
func (tree *Tree) Rotations() uint64 {
	return tree.rotations
}

// Root - return the key at the root of the tree
func (tree *Tree) Root() (Item, error) {
	if tree.IsEmpty() {
		return nil, fault.ErrEmptyTree
	}
	return tree.root.key, nil
}

// Clear - remove all items from the tree
//
// the detached nodes are not returned to the allocator pool so
// this does not depend on the size of the tree
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
	tree.rotations = 0
}
