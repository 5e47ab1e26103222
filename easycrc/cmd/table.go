/*
 * Copyright 2017 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dgraph-io/easycrc/export"
)

var tableOpt = export.DefaultOptions()

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the lookup table of a CRC as a C array.",
	Long: `
Prints the 256 entry lookup table of the selected CRC as a C array definition,
for example to put it in flash on an embedded system with little RAM.
`,
	PreRunE: resolveModel,
	RunE: func(cmd *cobra.Command, args []string) error {
		return export.WriteC(cmd.OutOrStdout(), model.NewHash(), tableOpt)
	},
}

func init() {
	RootCmd.AddCommand(tableCmd)
	tableCmd.Flags().IntVar(&tableOpt.Columns, "cols", tableOpt.Columns, "Entries per line.")
	tableCmd.Flags().StringVar(&tableOpt.Name, "name", tableOpt.Name, "Name of the array.")
	tableCmd.Flags().StringVar(&tableOpt.Suffix, "suffix", tableOpt.Suffix,
		"Suffix appended to every entry, e.g. U.")
}
