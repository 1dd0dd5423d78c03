// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlg/util"
)

func TestEnsureAbsolute(t *testing.T) {
	items := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/base", "log", "/base/log"},
		{"/base/", "./log/../data", "/base/data"},
		{"/base", "/var/log", "/var/log"},
		{"/base", "/var//log/", "/var/log"},
	}
	for i, item := range items {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: ensure absolute", i)
	}
}

func TestMakeDirectory(t *testing.T) {
	base, err := ioutil.TempDir("", "util")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(base)

	d, err := util.MakeDirectory(base, "a/b")
	assert.Nil(t, err, "make directory")
	assert.Equal(t, filepath.Join(base, "a", "b"), d, "path")
	assert.True(t, util.EnsureFileExists(d), "exists")

	// existing directory is not an error
	_, err = util.MakeDirectory(base, "a/b")
	assert.Nil(t, err, "make existing directory")

	assert.False(t, util.EnsureFileExists(filepath.Join(base, "missing")), "missing")
}
