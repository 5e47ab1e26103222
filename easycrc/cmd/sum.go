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
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var sumOpt struct {
	literal bool
	verbose bool
}

var sumCmd = &cobra.Command{
	Use:   "sum [file...]",
	Short: "Print the CRC of files, strings or stdin.",
	Long: `
Prints the CRC of every file given as argument. With no arguments, or with "-",
stdin is read. With --string the arguments themselves are checksummed.
`,
	PreRunE: resolveModel,
	RunE:    handleSum,
}

func init() {
	RootCmd.AddCommand(sumCmd)
	sumCmd.Flags().BoolVarP(&sumOpt.literal, "string", "s", false,
		"Checksum the arguments as strings instead of reading files.")
	sumCmd.Flags().BoolVar(&sumOpt.verbose, "verbose", false,
		"Print the number of bytes read as well.")
}

func handleSum(cmd *cobra.Command, args []string) error {
	if sumOpt.literal && len(args) == 0 {
		return errors.New("--string needs at least one argument")
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		h := model.NewHash()
		n, err := feed(cmd, h, arg)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s  %s", hexWidth(model, h.Sum64()), arg)
		if sumOpt.verbose {
			line += fmt.Sprintf(" (%s)", humanize.IBytes(uint64(n)))
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func feed(cmd *cobra.Command, w io.Writer, arg string) (int64, error) {
	if sumOpt.literal {
		n, err := io.WriteString(w, arg)
		return int64(n), err
	}
	if arg == "-" {
		n, err := io.Copy(w, cmd.InOrStdin())
		return n, errors.Wrap(err, "failed to read stdin")
	}
	f, err := os.Open(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open %s", arg)
	}
	defer f.Close()
	n, err := io.Copy(w, f)
	return n, errors.Wrapf(err, "failed to read %s", arg)
}
