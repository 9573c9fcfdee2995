// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

package main

import (
	"github.com/expgen/expgen/expgen/cmd"
)

func main() {
	cmd.Execute()
}
