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
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dgraph-io/easycrc"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the predefined CRC standards.",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tWIDTH\tPOLY\tINIT\tXOROUT\tREFIN\tREFOUT\tCHECK")
		for _, m := range easycrc.Models() {
			check, _ := easycrc.CheckValue(m.Name())
			fmt.Fprintf(tw, "%s\t%d\t0x%s\t0x%s\t0x%s\t%t\t%t\t0x%s\n",
				m.Name(), m.Width(), hexWidth(m, m.Poly64()), hexWidth(m, m.Init64()),
				hexWidth(m, m.XorOut64()), m.ReflectIn(), m.ReflectOut(), hexWidth(m, check))
		}
		return tw.Flush()
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
}
