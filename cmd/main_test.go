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

func TestRun_Help(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"-h", "--help", "-help"} {
		arg := arg
		t.Run(arg, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			code := run(context.Background(), []string{arg, "ignored.json"}, strings.NewReader(""), &stdout, &stderr)

			assert.Equal(t, 0, code)
			assert.True(t, strings.HasPrefix(stdout.String(), appName+" "+version+"\n\n"))
			assert.Contains(t, stdout.String(), "Usage: drive-access [client_secret.json] [client_access.json]")
			assert.Contains(t, stdout.String(), "-h, --help")
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_MissingSecret(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "absent_secret.json")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{missing}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "could not find authentication file")
	assert.Contains(t, stderr.String(), missing)
	assert.Equal(t, 1, strings.Count(strings.TrimRight(stderr.String(), "\n"), "\n")+1)
}

func TestRun_MalformedSecret(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	secret := filepath.Join(dir, "client_secret.json")
	require.NoError(t, os.WriteFile(secret, []byte("{not json"), 0o600))
	access := filepath.Join(dir, "client_access.json")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{secret, access}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "parsing client secret file")
	assert.NoFileExists(t, access)
}

func TestRun_UnknownFlag(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--bogus"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "flag provided but not defined: -bogus")
}
