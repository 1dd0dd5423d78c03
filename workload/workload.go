// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlg/avlg"
	"github.com/bitmark-inc/avlg/fault"
)

// Workload - one tree to build, as read from the configuration file
type Workload struct {
	Name         string `gluamapper:"name" json:"name"`
	MaxImbalance int    `gluamapper:"max_imbalance" json:"max_imbalance"`
	Pattern      string `gluamapper:"pattern" json:"pattern"`
	Count        int    `gluamapper:"count" json:"count"`
	Delete       int    `gluamapper:"delete" json:"delete"`
	Seed         int64  `gluamapper:"seed" json:"seed"`
	Verify       bool   `gluamapper:"verify" json:"verify"`
}

// Result - the state of a tree after a workload has run
type Result struct {
	Name           string        `json:"name"`
	MaxImbalance   int           `json:"max_imbalance"`
	Pattern        string        `json:"pattern"`
	Inserted       int           `json:"inserted"`
	Duplicates     int           `json:"duplicates"`
	Deleted        int           `json:"deleted"`
	Missing        int           `json:"missing"`
	Count          int           `json:"count"`
	Height         int           `json:"height"`
	Rotations      uint64        `json:"rotations"`
	WorstImbalance int           `json:"worst_imbalance"`
	Root           string        `json:"root,omitempty"`
	Elapsed        time.Duration `json:"elapsed"`
}

// Validate - check a workload before it is run
func (w Workload) Validate() error {
	if "" == w.Name {
		return fault.ErrInvalidWorkloadName
	}
	if w.MaxImbalance < 1 {
		return fault.ErrInvalidMaxImbalance
	}
	if w.Count <= 0 {
		return fault.ErrInvalidKeyCount
	}
	if w.Delete < 0 || w.Delete > w.Count {
		return fault.ErrInvalidDeleteCount
	}
	switch w.Pattern {
	case Ascending, Descending, Random, ZigZag:
	default:
		return fault.ErrInvalidPattern
	}
	return nil
}

// Run - build a tree for a single workload
//
// the tree is returned so that callers can inspect or display it
func Run(w Workload, log *logger.L) (*Result, *avlg.Tree, error) {
	if err := w.Validate(); nil != err {
		log.Errorf("%s: invalid workload: %s", w.Name, err)
		return nil, nil, err
	}

	keys, err := Keys(w.Pattern, w.Count, w.Seed)
	if nil != err {
		return nil, nil, err
	}

	tree, err := avlg.New(w.MaxImbalance)
	if nil != err {
		return nil, nil, err
	}

	log.Infof("%s: g: %d  pattern: %s  keys: %d  delete: %d", w.Name, w.MaxImbalance, w.Pattern, w.Count, w.Delete)

	result := &Result{
		Name:         w.Name,
		MaxImbalance: w.MaxImbalance,
		Pattern:      w.Pattern,
	}
	present := make(map[Key]struct{}, len(keys))

	start := time.Now()

	for _, key := range keys {
		if tree.Insert(key) {
			result.Inserted += 1
			present[key] = struct{}{}
		} else {
			result.Duplicates += 1
		}
		if w.Verify {
			if err := verify(tree, len(present)); nil != err {
				log.Errorf("%s: insert: %s  error: %s", w.Name, key, err)
				return nil, tree, err
			}
		}
	}
	log.Debugf("%s: loaded: %d  duplicates: %d  rotations: %d", w.Name, result.Inserted, result.Duplicates, tree.Rotations())

	for _, key := range keys[:w.Delete] {
		if tree.IsEmpty() {
			break
		}
		removed, err := tree.Delete(key)
		if nil != err {
			return nil, tree, err
		}
		if nil == removed {
			result.Missing += 1
		} else {
			result.Deleted += 1
			delete(present, key)
		}
		if w.Verify {
			if err := verify(tree, len(present)); nil != err {
				log.Errorf("%s: delete: %s  error: %s", w.Name, key, err)
				return nil, tree, err
			}
		}
	}

	result.Elapsed = time.Since(start)

	// final full check, every remaining key must be found
	if err := verify(tree, len(present)); nil != err {
		log.Errorf("%s: final check error: %s", w.Name, err)
		return nil, tree, err
	}
	for key := range present {
		found, err := tree.Search(key)
		if nil != err {
			return nil, tree, err
		}
		if nil == found || 0 != found.Compare(key) {
			log.Errorf("%s: search: %s  returned: %v", w.Name, key, found)
			return nil, tree, fault.ErrTreeSearchMismatch
		}
	}

	result.Count = tree.Count()
	result.Height = tree.Height()
	result.Rotations = tree.Rotations()
	result.WorstImbalance = tree.MaxImbalance()
	if root, err := tree.Root(); nil == err {
		result.Root = root.(Key).String()
	}

	log.Infof("%s: count: %d  height: %d  rotations: %d  worst imbalance: %d", w.Name, result.Count, result.Height, result.Rotations, result.WorstImbalance)

	return result, tree, nil
}

// check the structural invariants of a tree
func verify(tree *avlg.Tree, expectedCount int) error {
	if expectedCount != tree.Count() {
		return fault.ErrTreeCountMismatch
	}
	if !tree.IsBST() {
		return fault.ErrTreeNotOrdered
	}
	if !tree.IsAVLGBalanced() {
		return fault.ErrTreeNotBalanced
	}
	if !tree.CheckHeights() {
		return fault.ErrTreeHeightsCorrupt
	}
	return nil
}

// RunAll - run workloads in order, passing each result to the
// reporter; stops at the first error
func RunAll(workloads []Workload, reporter Reporter, log *logger.L) error {
	if 0 == len(workloads) {
		return fault.ErrNoWorkloads
	}
	for i, w := range workloads {
		result, tree, err := Run(w, log)
		if nil != err {
			log.Errorf("workload[%d]: %q  error: %s", i, w.Name, err)
			return err
		}
		if err := reporter.Report(result, tree); nil != err {
			log.Errorf("workload[%d]: %q  report error: %s", i, w.Name, err)
			return err
		}
	}
	return nil
}
