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
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dgraph-io/easycrc"
)

type variantFlags struct {
	name       string
	width      int
	poly       uint64
	init       uint64
	xorOut     uint64
	reflectIn  bool
	reflectOut bool
}

var (
	vFlags variantFlags
	// model is resolved from vFlags by resolveModel before sum and table run.
	model easycrc.Model
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:           "easycrc",
	Short:         "Table-driven CRC calculator.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&vFlags.name, "variant", "v", "CRC-32C",
		"Name of the CRC standard to use. See the list command.")
	RootCmd.PersistentFlags().IntVar(&vFlags.width, "width", 0,
		"Width in bits of a custom CRC (8, 16, 32 or 64). Overrides --variant when set.")
	RootCmd.PersistentFlags().Uint64Var(&vFlags.poly, "poly", 0, "Polynomial of a custom CRC.")
	RootCmd.PersistentFlags().Uint64Var(&vFlags.init, "init", 0, "Initial value of a custom CRC.")
	RootCmd.PersistentFlags().Uint64Var(&vFlags.xorOut, "xorout", 0,
		"Final XOR mask of a custom CRC.")
	RootCmd.PersistentFlags().BoolVar(&vFlags.reflectIn, "refin", false,
		"Reflect input bytes of a custom CRC.")
	RootCmd.PersistentFlags().BoolVar(&vFlags.reflectOut, "refout", false,
		"Reflect the result of a custom CRC.")
}

// resolveModel sets model from the variant flags. Only commands that
// checksum or dump a table use it.
func resolveModel(cmd *cobra.Command, args []string) error {
	if vFlags.width != 0 {
		m, err := easycrc.Define("custom", vFlags.width, vFlags.poly, vFlags.init,
			vFlags.xorOut, vFlags.reflectIn, vFlags.reflectOut)
		if err != nil {
			return errors.Wrap(err, "invalid custom CRC")
		}
		model = m
		return nil
	}
	m, err := easycrc.Lookup(vFlags.name)
	if err != nil {
		return err
	}
	model = m
	return nil
}

// hexWidth formats v as zero padded hex of the width of m.
func hexWidth(m easycrc.Model, v uint64) string {
	return fmt.Sprintf("%0*x", m.Width()/4, v)
}
