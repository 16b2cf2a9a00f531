package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bodgit/imgconv/bmp"
	"github.com/bodgit/imgconv/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

type result struct {
	code           int
	stdout, stderr string
}

func run(t *testing.T, args ...string) result {
	t.Helper()

	code := exitSuccess
	exiter := cli.OsExiter
	cli.OsExiter = func(c int) { code = c }
	defer func() { cli.OsExiter = exiter }()

	app := newApp()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	app.Writer = stdout
	app.ErrWriter = stderr

	err := app.Run(append([]string{"imgconv"}, args...))
	if err != nil {
		_, ok := err.(cli.ExitCoder)
		require.True(t, ok, "%v", err)
	}

	return result{code, stdout.String(), stderr.String()}
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()

	in := filepath.Join(dir, "in.bmp")
	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, pixel.New(2, 2, pixel.White)))
	require.NoError(t, f.Close())

	tables := []struct {
		args []string
		code int
	}{
		{[]string{}, exitUsage},
		{[]string{in}, exitUsage},
		{[]string{in, "a.ppm", "b.ppm"}, exitUsage},
		{[]string{"in.gif", "out.bmp"}, exitUnknownInput},
		{[]string{in, "out.gif"}, exitUnknownOutput},
		{[]string{filepath.Join(dir, "missing.bmp"), "out.ppm"}, exitLoad},
		{[]string{in, filepath.Join(dir, "missing", "out.ppm")}, exitSave},
		{[]string{in, filepath.Join(dir, "out.ppm")}, exitSuccess},
		{[]string{"--colors", "2", "--dither", in, filepath.Join(dir, "out.jpg")}, exitSuccess},
		{[]string{"--colors", "1", in, filepath.Join(dir, "out.bmp")}, exitUsage},
		{[]string{"--colors", "300", in, filepath.Join(dir, "out.bmp")}, exitUsage},
	}

	for _, table := range tables {
		r := run(t, table.args...)
		assert.Equal(t, table.code, r.code, "%v", table.args)

		if table.code == exitSuccess {
			continue
		}

		// Failures print a single line on stderr and nothing on stdout
		assert.Empty(t, r.stdout, "%v", table.args)
		lines := strings.Split(strings.TrimSuffix(r.stderr, "\n"), "\n")
		if assert.Len(t, lines, 1, "%v", table.args) {
			assert.NotEmpty(t, lines[0], "%v", table.args)
		}
	}
}

func TestColorsOutOfRange(t *testing.T) {
	dir := t.TempDir()

	in := filepath.Join(dir, "in.bmp")
	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, pixel.New(2, 2, pixel.White)))
	require.NoError(t, f.Close())

	for _, n := range []string{"1", "257", "1000"} {
		out := filepath.Join(dir, "out"+n+".bmp")
		r := run(t, "--colors", n, in, out)
		assert.Equal(t, exitUsage, r.code, n)
		assert.Contains(t, r.stderr, "between 2 and 256", n)

		_, err := os.Stat(out)
		assert.True(t, os.IsNotExist(err), n)
	}
}

func TestSuccessMessage(t *testing.T) {
	dir := t.TempDir()

	in := filepath.Join(dir, "in.bmp")
	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, pixel.New(1, 1, pixel.Black)))
	require.NoError(t, f.Close())

	journal := filepath.Join(dir, "journal.db")
	r := run(t, "--journal", journal, in, filepath.Join(dir, "out.bmp"))
	assert.Equal(t, exitSuccess, r.code)
	assert.Equal(t, "Successfully converted\n", r.stdout)
	assert.Empty(t, r.stderr)

	_, err = os.Stat(journal)
	assert.NoError(t, err)
}
