/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X main.version=...". Left at
// "dev" otherwise.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the tinylox version",
	Args:  cobra.NoArgs,

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}
