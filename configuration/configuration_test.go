// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auctiond/configuration"
	"github.com/bitmark-inc/auctiond/fault"
)

type listenType struct {
	Listen             []string `gluamapper:"listen"`
	MaximumConnections int      `gluamapper:"maximum_connections"`
}

type testConfiguration struct {
	DataDirectory string     `gluamapper:"data_directory"`
	Secret        string     `gluamapper:"secret"`
	Queue         int        `gluamapper:"queue"`
	Enabled       bool       `gluamapper:"enabled"`
	RPC           listenType `gluamapper:"rpc"`
}

const script = `
local M = {}
M.data_directory = arg[0]
M.secret = ENV_AUCTIOND_TEST_SECRET
M.queue = 25
M.enabled = true
M.rpc = {
    listen = { "127.0.0.1:2130", "[::1]:2130" },
    maximum_connections = 5,
}
return M
`

func writeFile(t *testing.T, name string, content string) string {
	fileName := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func TestParse(t *testing.T) {
	fileName := writeFile(t, "auctiond.conf", script)

	config := &testConfiguration{
		Queue: 1,
	}
	variables := map[string]string{
		"ENV_AUCTIOND_TEST_SECRET": "hidden",
	}
	err := configuration.ParseConfigurationFile(fileName, config, variables)
	assert.Nil(t, err, "parse")

	assert.Equal(t, fileName, config.DataDirectory, "arg[0]")
	assert.Equal(t, "hidden", config.Secret, "variable")
	assert.Equal(t, 25, config.Queue, "queue")
	assert.True(t, config.Enabled, "enabled")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, config.RPC.Listen, "listen")
	assert.Equal(t, 5, config.RPC.MaximumConnections, "connections")
}

func TestParseErrors(t *testing.T) {
	fileName := writeFile(t, "bad.conf", "return {")
	err := configuration.ParseConfigurationFile(fileName, &testConfiguration{}, nil)
	assert.NotNil(t, err, "syntax error accepted")

	fileName = writeFile(t, "scalar.conf", "return 42")
	err = configuration.ParseConfigurationFile(fileName, &testConfiguration{}, nil)
	assert.Equal(t, fault.ConfigurationNotTable, err, "scalar result")

	err = configuration.ParseConfigurationFile(fileName, testConfiguration{}, nil)
	assert.Equal(t, fault.InvalidStructPointer, err, "not a pointer")
}

func TestVariables(t *testing.T) {
	dotenv := writeFile(t, "auctiond.env", "AUCTIOND_TEST_DOTENV=from-file\nAUCTIOND_TEST_BOTH=from-file\n")
	t.Setenv("AUCTIOND_TEST_BOTH", "from-process")

	variables, err := configuration.Variables(dotenv)
	assert.Nil(t, err, "variables")
	assert.Equal(t, "from-file", variables["ENV_AUCTIOND_TEST_DOTENV"], "dotenv")
	assert.Equal(t, "from-process", variables["ENV_AUCTIOND_TEST_BOTH"], "process precedence")

	_, err = configuration.Variables(filepath.Join(t.TempDir(), "missing.env"))
	assert.NotNil(t, err, "missing dotenv accepted")
}
