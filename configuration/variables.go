// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// VariablePrefix - prefix of every global exposed to the script
const VariablePrefix = "ENV_"

// Variables - collect script globals from the process environment
//
// a non-empty dotenvFile is read first; process environment values
// take precedence over it
func Variables(dotenvFile string) (map[string]string, error) {
	variables := make(map[string]string)

	if "" != dotenvFile {
		env, err := godotenv.Read(dotenvFile)
		if nil != err {
			return nil, err
		}
		for k, v := range env {
			variables[VariablePrefix+k] = v
		}
	}

	for _, e := range os.Environ() {
		k, v, ok := strings.Cut(e, "=")
		if !ok || "" == k {
			continue
		}
		variables[VariablePrefix+k] = v
	}

	return variables, nil
}
