// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - drive AVL-G trees with generated key sequences
//
// A workload loads a tree with a sequence of integer keys, removes a
// prefix of the same sequence and reports the resulting shape
// together with the number of rotations that were needed.  Running
// the same workload with different maximum imbalances shows the
// trade between rotations and height.
package workload
