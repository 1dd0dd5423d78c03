// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

// IsBST - check every key is strictly between the bounds set by its
// ancestors
func (tree *Tree) IsBST() bool {
	return isBST(tree.root, nil, nil)
}

// internal: low and high are exclusive bounds, nil means unbounded
func isBST(p *node, low Item, high Item) bool {
	if nil == p {
		return true
	}
	if nil != low && low.Compare(p.key) >= 0 {
		return false
	}
	if nil != high && high.Compare(p.key) <= 0 {
		return false
	}
	return isBST(p.left, low, p.key) && isBST(p.right, p.key, high)
}

// IsAVLGBalanced - check that no node has an imbalance greater than
// the tree's limit
func (tree *Tree) IsAVLGBalanced() bool {
	return isBalanced(tree.root, tree.g)
}

func isBalanced(p *node, g int) bool {
	if nil == p {
		return true
	}
	b := balance(p)
	if b > g || b < -g {
		return false
	}
	return isBalanced(p.left, g) && isBalanced(p.right, g)
}

// MaxImbalance - the balance factor with the largest magnitude
// anywhere in the tree, 0 for an empty tree
func (tree *Tree) MaxImbalance() int {
	return maxImbalance(tree.root)
}

func maxImbalance(p *node) int {
	if nil == p {
		return 0
	}
	max := balance(p)
	if l := maxImbalance(p.left); abs(l) > abs(max) {
		max = l
	}
	if r := maxImbalance(p.right); abs(r) > abs(max) {
		max = r
	}
	return max
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// CheckHeights - check the cached heights for consistency
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

// internal: returns the computed height of the sub-tree
func checkHeights(p *node) (int, bool) {
	if nil == p {
		return -1, true
	}
	hl, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := hl
	if hr > h {
		h = hr
	}
	h += 1
	return h, h == p.height
}
