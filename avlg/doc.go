// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avlg - an AVL tree with a relaxed balance condition
//
// Each tree is created with a maximum imbalance g (g >= 1) and keeps
// the height difference of the two sub-trees of every node within
// g. A tree with g == 1 is a classic AVL tree; larger values of g
// perform fewer rotations on insert and delete at the cost of a
// deeper worst case search.
//
// Every node caches the height of its sub-tree, an empty sub-tree
// has a height of -1.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Duplicate keys are never stored, inserting a key that compares
// equal to an existing key leaves the tree unchanged.
package avlg
