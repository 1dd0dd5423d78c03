// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

// height of a sub-tree, an absent sub-tree is -1
func height(p *node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// left height minus right height
func balance(p *node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// recompute the cached height from the children
func (p *node) fix() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// single left rotation, returns the new sub-tree root
//
//      x                y
//     / \              / \
//    a   y     →      x   c
//       / \          / \
//      z   c        a   z
func (tree *Tree) rotateLeft(x *node) *node {
	y := x.right
	z := y.left
	x.right = z
	y.left = x

	// x is now below y
	x.fix()
	y.fix()

	tree.rotations += 1
	return y
}

// single right rotation, returns the new sub-tree root
//
//        x            y
//       / \          / \
//      y   c   →    a   x
//     / \              / \
//    a   z            z   c
func (tree *Tree) rotateRight(x *node) *node {
	y := x.left
	z := y.right
	x.left = z
	y.right = x

	// x is now below y
	x.fix()
	y.fix()

	tree.rotations += 1
	return y
}
