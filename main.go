// SPDX-License-Identifier: MPL-2.0

package main

import cmd "abiforge-cli/cmd/abiforge"

func main() {
	cmd.Execute()
}
