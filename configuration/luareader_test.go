// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlg/configuration"
	"github.com/bitmark-inc/avlg/fault"
)

type itemType struct {
	Name  string `gluamapper:"name"`
	Limit int    `gluamapper:"max_imbalance"`
	Check bool   `gluamapper:"verify"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Items         []itemType        `gluamapper:"items"`
	Levels        map[string]string `gluamapper:"levels"`
}

const testConfig = `
local M = {}

M.data_directory = "."
M.items = {
    { name = "first", max_imbalance = 1, verify = true },
    { name = "second-" .. arg[0]:match("[^/]*$"), max_imbalance = 1 + 2 },
}
M.levels = {
    main = "info",
    DEFAULT = "critical",
}

return M
`

func writeFile(t *testing.T, name string, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, name)
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, "test.conf", testConfig)
	defer cleanup()

	config := &testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, ".", config.DataDirectory, "data directory")
	assert.Equal(t, 2, len(config.Items), "items")
	assert.Equal(t, itemType{Name: "first", Limit: 1, Check: true}, config.Items[0], "first item")
	assert.Equal(t, itemType{Name: "second-test.conf", Limit: 3}, config.Items[1], "second item")
	assert.Equal(t, "info", config.Levels["main"], "main level")
	assert.Equal(t, "critical", config.Levels["DEFAULT"], "default level")
}

func TestParseConfigurationInvalidTarget(t *testing.T) {
	fileName, cleanup := writeFile(t, "test.conf", testConfig)
	defer cleanup()

	var s testConfiguration
	err := configuration.ParseConfigurationFile(fileName, s)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non pointer")

	n := 5
	err = configuration.ParseConfigurationFile(fileName, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non struct")
}

func TestParseConfigurationLuaError(t *testing.T) {
	fileName, cleanup := writeFile(t, "bad.conf", "return {")
	defer cleanup()

	err := configuration.ParseConfigurationFile(fileName, &testConfiguration{})
	assert.NotNil(t, err, "syntax error expected")

	err = configuration.ParseConfigurationFile(fileName+".missing", &testConfiguration{})
	assert.NotNil(t, err, "missing file error expected")
}

func TestParseConfigurationNotTable(t *testing.T) {
	fileName, cleanup := writeFile(t, "number.conf", "return 42")
	defer cleanup()

	err := configuration.ParseConfigurationFile(fileName, &testConfiguration{})
	assert.Equal(t, fault.ErrInvalidConfigTable, err, "non table result")
}
