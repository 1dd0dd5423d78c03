// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/avlg/avlg"
)

// Reporter - receives the result of each workload
type Reporter interface {
	Report(*Result, *avlg.Tree) error
}

// JSONReporter - write each result as an indented JSON block,
// optionally followed by a drawing of the tree
type JSONReporter struct {
	Writer    io.Writer
	PrintTree bool
}

// Report - write a single result
func (r *JSONReporter) Report(result *Result, tree *avlg.Tree) error {
	b, err := json.MarshalIndent(result, "", "  ")
	if nil != err {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "%s\n", b); nil != err {
		return err
	}
	if r.PrintTree && nil != tree {
		depth := tree.Print(r.Writer)
		_, err = fmt.Fprintf(r.Writer, "levels: %d\n", depth)
	}
	return err
}
