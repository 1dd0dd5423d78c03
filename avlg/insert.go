// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

// Insert - insert a new key into the tree
// returns false if the key was already present, the tree is unchanged
func (tree *Tree) Insert(key Item) bool {
	added := false
	tree.root, added = tree.insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
//
// the rotation case is chosen by comparing the inserted key with
// the key of the heavy child
func (tree *Tree) insert(key Item, p *node) (*node, bool) {
	if nil == p { // insert new node
		return newNode(key), true
	}

	added := false
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left, added = tree.insert(key, p.left)
	case c < 0: // p.key < key
		p.right, added = tree.insert(key, p.right)
	default: // duplicate
		return p, false
	}

	p.fix()

	b := balance(p)
	switch {
	case b > tree.g && p.left.key.Compare(key) > 0:
		// LL: single right rotation
		return tree.rotateRight(p), added

	case b < -tree.g && p.right.key.Compare(key) < 0:
		// RR: single left rotation
		return tree.rotateLeft(p), added

	case b > tree.g && p.left.key.Compare(key) < 0:
		// LR: double rotation
		p.left = tree.rotateLeft(p.left)
		return tree.rotateRight(p), added

	case b < -tree.g && p.right.key.Compare(key) > 0:
		// RL: double rotation
		p.right = tree.rotateRight(p.right)
		return tree.rotateLeft(p), added
	}
	return p, added
}
