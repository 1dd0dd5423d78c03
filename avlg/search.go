// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

import (
	"github.com/bitmark-inc/avlg/fault"
)

// Search - find a specific item
//
// returns the stored key that compares equal, or nil if there is none
func (tree *Tree) Search(key Item) (Item, error) {
	if tree.IsEmpty() {
		return nil, fault.ErrEmptyTree
	}
	p := search(key, tree.root)
	if nil == p {
		return nil, nil
	}
	return p.key, nil
}

func search(key Item, tree *node) *node {
	if nil == tree {
		return nil
	}

	switch c := tree.key.Compare(key); {
	case c > 0: // tree.key > key
		return search(key, tree.left)
	case c < 0: // tree.key < key
		return search(key, tree.right)
	default:
		return tree
	}
}
