// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the command with the given standard input and arguments,
// and returns what it wrote to standard output and standard error.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newCLI()
	cmd.SetArgs(append([]string{}, args...)) // non-nil, so os.Args is not used
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Setenv("JCHECK_DEBUG", "")
	t.Setenv("JCHECK_MAX_DEPTH", "")
}

func TestStdin(t *testing.T) {
	clearEnv(t)
	stdout, _, err := runCLI(t, ` { "b": [1, 2.5], "a": null } `)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":null,\"b\":[1,2.5]}\n", stdout)

	stdout, _, err = runCLI(t, `"dash"`, "-")
	require.NoError(t, err)
	assert.Equal(t, "\"dash\"\n", stdout)
}

func TestFiles(t *testing.T) {
	clearEnv(t)
	good := writeFile(t, "good.json", `[true, {"x": "y"}]`)
	bad := writeFile(t, "bad.json", "[\n  1,\n  nul\n]")

	stdout, stderr, err := runCLI(t, "", good, bad)
	assert.EqualError(t, err, "1 of 2 inputs failed")
	assert.Equal(t, "[true,{\"x\":\"y\"}]\n", stdout)
	assert.Contains(t, stderr, bad+": at offset 13 (3:5): invalid literal")

	_, stderr, err = runCLI(t, "", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.Contains(t, stderr, "missing.json")
}

func TestQuiet(t *testing.T) {
	clearEnv(t)
	stdout, _, err := runCLI(t, `[1, 2, 3]`, "--quiet")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestPath(t *testing.T) {
	clearEnv(t)
	const input = `{"list": [{"name": "alpha"}, {"name": "beta"}], "n": 3}`

	stdout, _, err := runCLI(t, input, "--path", "list.1.name")
	require.NoError(t, err)
	assert.Equal(t, "\"beta\"\n", stdout)

	stdout, _, err = runCLI(t, input, "-p", "list.-1")
	require.NoError(t, err)
	assert.Equal(t, "{\"name\":\"beta\"}\n", stdout)

	_, stderr, err := runCLI(t, input, "--path", "list.nonesuch")
	assert.Error(t, err)
	assert.Contains(t, stderr, `path "list.nonesuch"`)
}

func TestJPath(t *testing.T) {
	clearEnv(t)
	const input = `{"list": [{"name": "alpha"}, {"name": "beta", "tag": "x"}], "n": 3}`

	stdout, _, err := runCLI(t, input, "--jpath", "$.list[*].name")
	require.NoError(t, err)
	assert.Equal(t, "[\"alpha\",\"beta\"]\n", stdout)

	stdout, _, err = runCLI(t, input, "--jpath", "$..tag")
	require.NoError(t, err)
	assert.Equal(t, "[\"x\"]\n", stdout)

	_, stderr, err := runCLI(t, input, "--jpath", "$.list[*].tag")
	assert.EqualError(t, err, "1 of 1 inputs failed")
	assert.Contains(t, stderr, `jpath "$.list[*].tag"`)

	// Invalid and unsupported expressions fail before any input is read.
	_, _, err = runCLI(t, input, "--jpath", "list")
	assert.ErrorContains(t, err, "missing root marker")
	_, _, err = runCLI(t, input, "--jpath", "$.list[?(@.tag)]")
	assert.ErrorContains(t, err, "unsupported step")

	_, _, err = runCLI(t, input, "--jpath", "$.n", "--path", "n")
	assert.Error(t, err)
}

func TestIndent(t *testing.T) {
	clearEnv(t)
	stdout, _, err := runCLI(t, `{"a": [1, 2, 3, 4], "b": true}`, "--indent")
	require.NoError(t, err)
	assert.Equal(t, `{
  "a": [
    1,
    2,
    3,
    4
  ],

  "b": true
}
`, stdout)
}

func TestJWCC(t *testing.T) {
	clearEnv(t)
	const input = `// A comment.
{"a": [1, 2,], /* inline */ "b": true,}
`
	_, _, err := runCLI(t, input)
	assert.Error(t, err, "comments accepted without --jwcc")

	stdout, _, err := runCLI(t, input, "--jwcc")
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":[1,2],\"b\":true}\n", stdout)

	stdout, _, err = runCLI(t, input, "--jwcc", "--indent")
	require.NoError(t, err)
	assert.Contains(t, stdout, "// A comment.")
	assert.Contains(t, stdout, "inline")

	stdout, _, err = runCLI(t, input, "--jwcc", "--path", "a.0")
	require.NoError(t, err)
	assert.Equal(t, "1\n", stdout)
}

func TestMaxDepth(t *testing.T) {
	clearEnv(t)
	const input = `[[[1]]]`

	_, stderr, err := runCLI(t, input, "--max-depth", "2")
	assert.Error(t, err)
	assert.Contains(t, stderr, "nesting too deep")

	t.Setenv("JCHECK_MAX_DEPTH", "2")
	_, _, err = runCLI(t, input)
	assert.Error(t, err)

	// The flag overrides the environment.
	stdout, _, err := runCLI(t, input, "--max-depth", "3")
	require.NoError(t, err)
	assert.Equal(t, "[[[1]]]\n", stdout)

	t.Setenv("JCHECK_MAX_DEPTH", "lots")
	_, _, err = runCLI(t, input)
	assert.ErrorContains(t, err, "invalid JCHECK_MAX_DEPTH")
}

func TestDebugLog(t *testing.T) {
	clearEnv(t)
	t.Setenv("JCHECK_DEBUG", "1")

	_, stderr, err := runCLI(t, `{}`)
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "valid input")

	_, stderr, err = runCLI(t, `{"a"}`)
	assert.Error(t, err)
	assert.Contains(t, stderr, "syntax error")
	assert.Contains(t, stderr, "offset=5")
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want config
		fail bool
	}{
		{"Empty", nil, config{}, false},
		{"Debug", map[string]string{"JCHECK_DEBUG": "true"}, config{Debug: true}, false},
		{"DebugQuoted", map[string]string{"JCHECK_DEBUG": `"0"`}, config{}, false},
		{"DebugOther", map[string]string{"JCHECK_DEBUG": "yes"}, config{Debug: true}, false},
		{"MaxDepth", map[string]string{"JCHECK_MAX_DEPTH": " 64 "}, config{MaxDepth: 64}, false},
		{"MaxDepthZero", map[string]string{"JCHECK_MAX_DEPTH": "0"}, config{}, true},
		{"MaxDepthBad", map[string]string{"JCHECK_MAX_DEPTH": "x"}, config{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := loadConfig(func(key string) string { return tc.env[key] })
			if tc.fail {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg)
		})
	}
}

func TestParsePath(t *testing.T) {
	assert.Equal(t, []any{"a", 0, "b", -1}, parsePath("a.0.b.-1"))
	assert.Equal(t, []any{"only"}, parsePath("only"))
}
