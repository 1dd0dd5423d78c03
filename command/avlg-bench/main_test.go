// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlg/fault"
)

const (
	testingDirName = "testing"
)

// Test main entrypoint
func TestMain(m *testing.M) {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0o700)

	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	})

	result := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(result)
}

func writeConfiguration(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "avlg-bench")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

const validConfiguration = `
local M = {}
M.data_directory = "."
M.workloads = {
    { name = "one", max_imbalance = 2, pattern = "random", count = 100, delete = 50, seed = 7, verify = true },
    { name = "two", max_imbalance = 1, pattern = "zigzag", count = 10 },
}
M.logging = {
    levels = { DEFAULT = "debug" },
}
return M
`

func TestGetConfiguration(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, validConfiguration)
	defer cleanup()

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration error")

	dir, _ := filepath.Split(fileName)
	assert.Equal(t, filepath.Clean(dir), c.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), c.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, c.Logging.File, "log file")
	assert.Equal(t, "debug", c.Logging.Levels[logger.DefaultTag], "log level")

	assert.Equal(t, 2, len(c.Workloads), "workloads")
	w := c.Workloads[0]
	assert.Equal(t, "one", w.Name, "name")
	assert.Equal(t, 2, w.MaxImbalance, "max imbalance")
	assert.Equal(t, "random", w.Pattern, "pattern")
	assert.Equal(t, 100, w.Count, "count")
	assert.Equal(t, 50, w.Delete, "delete")
	assert.Equal(t, int64(7), w.Seed, "seed")
	assert.True(t, w.Verify, "verify")
	assert.False(t, c.Workloads[1].Verify, "verify default")

	info, err := os.Stat(c.Logging.Directory)
	assert.Nil(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory")
}

func TestGetConfigurationErrors(t *testing.T) {
	_, err := getConfiguration(filepath.Join(testingDirName, "missing.conf"))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")

	empty, cleanup := writeConfiguration(t, `return { data_directory = "." }`)
	defer cleanup()
	_, err = getConfiguration(empty)
	assert.Equal(t, fault.ErrNoWorkloads, err, "no workloads")

	invalid, cleanup2 := writeConfiguration(t, `return { workloads = { { name = "x", max_imbalance = 0, pattern = "ascending", count = 5 } } }`)
	defer cleanup2()
	_, err = getConfiguration(invalid)
	assert.NotNil(t, err, "invalid workload")

	badLog, cleanup3 := writeConfiguration(t, `return { workloads = { { name = "x", max_imbalance = 1, pattern = "ascending", count = 5 } }, logging = { file = "a/b.log" } }`)
	defer cleanup3()
	_, err = getConfiguration(badLog)
	assert.NotNil(t, err, "log file with path")
}

func TestFileWatcher(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, validConfiguration)
	defer cleanup()

	channels := watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	w, err := newFileWatcher(fileName, logger.New("test"), channels)
	assert.Nil(t, err, "new watcher")
	assert.Nil(t, w.Start(), "start")
	defer w.Stop()

	err = ioutil.WriteFile(fileName, []byte(validConfiguration+"\n"), 0600)
	assert.Nil(t, err, "rewrite")

	select {
	case <-channels.change:
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}

	err = os.Remove(fileName)
	assert.Nil(t, err, "remove")

	select {
	case <-channels.remove:
	case <-time.After(5 * time.Second):
		t.Fatal("no remove event")
	}

	_, err = newFileWatcher(fileName, logger.New("test"), channels)
	assert.NotNil(t, err, "watch missing file")
}
