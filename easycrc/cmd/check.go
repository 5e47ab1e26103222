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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dgraph-io/easycrc"
)

// demoVectors are checksums of the bytes 00 01 02 03.
var demoVectors = []struct {
	model easycrc.Model
	want  uint64
}{
	{easycrc.CRC32C, 0xD9331AA3},
	{easycrc.CRC16A, 0x0DF7},
	{easycrc.CRC8, 0x48},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify every predefined CRC against its published check value.",
	RunE:  handleCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func handleCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	var failed int
	report := func(name string, err error) {
		if err != nil {
			failed++
			fmt.Fprintf(out, "%-28s WRONG: %v\n", name, err)
			return
		}
		fmt.Fprintf(out, "%-28s CORRECT\n", name)
	}

	for _, m := range easycrc.Models() {
		check, ok := easycrc.CheckValue(m.Name())
		if !ok {
			continue
		}
		report(m.Name(), easycrc.VerifyChecksum(m, []byte(easycrc.CheckInput), check))
	}
	for _, v := range demoVectors {
		report(v.model.Name()+" (00..03)",
			easycrc.VerifyChecksum(v.model, []byte{0x00, 0x01, 0x02, 0x03}, v.want))
	}

	if failed > 0 {
		return errors.Errorf("%d checks failed", failed)
	}
	return nil
}
