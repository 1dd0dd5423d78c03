// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

import (
	"github.com/bitmark-inc/avlg/fault"
)

// Delete - removes a specific item from the tree
//
// returns the removed key, or nil if the key was not in the tree
func (tree *Tree) Delete(key Item) (Item, error) {
	if tree.IsEmpty() {
		return nil, fault.ErrEmptyTree
	}
	removed := Item(nil)
	tree.root, removed = tree.delete(key, tree.root)
	if nil != removed {
		tree.count -= 1
	}
	return removed, nil
}

// internal delete routine
//
// the rotation case is chosen from the balance of the heavy child
func (tree *Tree) delete(key Item, p *node) (*node, Item) {
	if nil == p { // key not in tree
		return nil, nil
	}

	removed := Item(nil)
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left, removed = tree.delete(key, p.left)
	case c < 0: // p.key < key
		p.right, removed = tree.delete(key, p.right)
	default: // found: delete p
		removed = p.key
		if nil == p.left {
			r := p.right
			freeNode(p)
			return r, removed
		}
		if nil == p.right {
			l := p.left
			freeNode(p)
			return l, removed
		}

		// two children: copy the in-order successor's key into
		// this node then remove the successor from the right
		p.key = p.right.first().key
		p.right, _ = tree.delete(p.key, p.right)
	}

	p.fix()

	b := balance(p)
	switch {
	case b > tree.g && balance(p.left) >= 0:
		// LL: single right rotation
		return tree.rotateRight(p), removed

	case b < -tree.g && balance(p.right) <= 0:
		// RR: single left rotation
		return tree.rotateLeft(p), removed

	case b > tree.g && balance(p.left) < 0:
		// LR: double rotation
		p.left = tree.rotateLeft(p.left)
		return tree.rotateRight(p), removed

	case b < -tree.g && balance(p.right) > 0:
		// RL: double rotation
		p.right = tree.rotateRight(p.right)
		return tree.rotateLeft(p), removed
	}
	return p, removed
}

// internal: lowest node in a sub-tree
func (p *node) first() *node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}
