/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

var devCmd = &cobra.Command{
	Use:   "dev <subcommand>",
	Short: "Collection of subcommands for developing tinylox itself",
	Long: heredoc.Doc(`
		Collection of subcommands useful for developing tinylox itself.
		If you are not working to improve the 'tinylox' tool, you
		probably don't need to look here.`),
}
