// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlg-bench - run AVL-G tree workloads from a Lua configuration file
//
// Each workload in the configuration builds a tree with its own
// maximum imbalance and key pattern; the results (height, rotations,
// worst imbalance) are written to stdout as JSON.
//
//   avlg-bench --config-file=avlg-bench.conf [--print] [--watch]
//
// With --watch the workloads are run again each time the
// configuration file is written, until the file is removed or the
// program is interrupted.
package main
