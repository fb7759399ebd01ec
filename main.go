// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"

	cmd "github.com/indiebuilderkit/assetkit/cmd/assetkit"
)

func main() {
	os.Exit(cmd.Run())
}
