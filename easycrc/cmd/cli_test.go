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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/dgraph-io/easycrc"
	"github.com/dgraph-io/easycrc/export"
)

// run executes the root command with args, feeding stdin from in, and returns
// what was written to stdout.
func run(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	vFlags = variantFlags{name: "CRC-32C"}
	sumOpt.literal, sumOpt.verbose = false, false
	tableOpt = export.DefaultOptions()

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetIn(strings.NewReader(in))
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestSumStrings(t *testing.T) {
	out, err := run(t, "", "sum", "-s", "123456789")
	require.NoError(t, err)
	require.Equal(t, "e3069283  123456789\n", out)

	out, err = run(t, "", "sum", "--variant", "CRC-16/A", "-s", "123456789", "abc")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "bf05  123456789", lines[0])
	require.True(t, strings.HasSuffix(lines[1], "  abc"))
}

func TestSumStdin(t *testing.T) {
	out, err := run(t, "123456789", "sum", "-v", "crc-8")
	require.NoError(t, err)
	require.Equal(t, "f4  -\n", out)
}

func TestSumFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "easycrc-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x01, 0x02, 0x03}, 0600))

	out, err := run(t, "", "sum", "--verbose", path)
	require.NoError(t, err)
	require.Equal(t, "d9331aa3  "+path+" (4 B)\n", out)

	_, err = run(t, "", "sum", filepath.Join(dir, "missing"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestSumCustomVariant(t *testing.T) {
	out, err := run(t, "", "sum", "-s", "--width", "16", "--poly", "0x1021",
		"--init", "0xFFFF", "123456789")
	require.NoError(t, err)
	require.Equal(t, "29b1  123456789\n", out)

	_, err = run(t, "", "sum", "-s", "--width", "12", "x")
	require.Error(t, err)
	require.Equal(t, easycrc.ErrInvalidWidth, errors.Cause(err))
}

func TestUnknownVariant(t *testing.T) {
	_, err := run(t, "", "sum", "-v", "CRC-5", "-s", "x")
	require.Error(t, err)
	require.Equal(t, easycrc.ErrUnknownVariant, errors.Cause(err))
}

func TestTable(t *testing.T) {
	out, err := run(t, "", "table", "-v", "CRC-8", "--cols", "16", "--name", "crc8")
	require.NoError(t, err)

	want, err := export.C(easycrc.CRC8.New(), export.DefaultOptions().WithColumns(16).WithName("crc8"))
	require.NoError(t, err)
	require.Equal(t, want, out)

	_, err = run(t, "", "table", "--cols", "0")
	require.Equal(t, export.ErrInvalidColumns, errors.Cause(err))
}

func TestList(t *testing.T) {
	out, err := run(t, "", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.True(t, strings.HasPrefix(lines[0], "NAME"))
	require.GreaterOrEqual(t, len(lines), len(easycrc.Models())+1)
	require.Contains(t, out, "CRC-32C")
	require.Contains(t, out, "0x1edc6f41")
	require.Contains(t, out, "0xe3069283")
}

func TestCheck(t *testing.T) {
	out, err := run(t, "", "check")
	require.NoError(t, err)
	require.NotContains(t, out, "WRONG")
	require.Contains(t, out, "CRC-32C (00..03)")
	require.Equal(t, len(easycrc.Models())+len(demoVectors), strings.Count(out, "CORRECT"))
}

func TestSumStringNeedsArgs(t *testing.T) {
	out, err := run(t, "123456789", "sum", "-s")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--string needs at least one argument")
	require.Empty(t, out)
}

// list and check do not use the selected variant, so a bad one is ignored.
func TestVariantIgnoredByListAndCheck(t *testing.T) {
	_, err := run(t, "", "list", "-v", "bogus")
	require.NoError(t, err)
	_, err = run(t, "", "check", "-v", "bogus")
	require.NoError(t, err)

	_, err = run(t, "", "table", "-v", "bogus")
	require.Equal(t, easycrc.ErrUnknownVariant, errors.Cause(err))
}

func TestErrorsNotPrintedByCobra(t *testing.T) {
	var stderr bytes.Buffer
	RootCmd.SetErr(&stderr)
	defer RootCmd.SetErr(nil)

	out, err := run(t, "", "sum", "-v", "bogus", "-s", "x")
	require.Error(t, err)
	require.Empty(t, out)
	require.Empty(t, stderr.String())
}
