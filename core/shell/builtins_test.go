package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t, []string{"cd", "exit", "status"}, BuiltinNames())
}

func TestAllBuiltinsRegistered(t *testing.T) {
	for name, builtin := range AllBuiltins {
		t.Run(name, func(t *testing.T) {
			assert.NotNil(t, builtin)
		})
	}
}

func TestBuiltinCd(t *testing.T) {
	origWd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(origWd)

	origHome := os.Getenv("HOME")
	defer os.Setenv("HOME", origHome)

	home := t.TempDir()
	target := t.TempDir()
	require.NoError(t, os.Setenv("HOME", home))

	s := &Shell{out: &lockedWriter{w: os.Stdout}, errOut: os.Stderr}

	t.Run("with argument", func(t *testing.T) {
		assert.NoError(t, builtinCd(s, []string{"cd", target}))
		wd, err := os.Getwd()
		assert.NoError(t, err)
		assert.Equal(t, resolved(t, target), resolved(t, wd))
	})

	t.Run("without argument goes home", func(t *testing.T) {
		assert.NoError(t, builtinCd(s, []string{"cd"}))
		wd, err := os.Getwd()
		assert.NoError(t, err)
		assert.Equal(t, resolved(t, home), resolved(t, wd))
	})

	t.Run("invalid path leaves directory unchanged", func(t *testing.T) {
		errOut := &safeBuffer{}
		s := &Shell{out: &lockedWriter{w: os.Stdout}, errOut: errOut}

		before, err := os.Getwd()
		require.NoError(t, err)

		assert.NoError(t, builtinCd(s, []string{"cd", "/definitely/not/a/dir"}))

		after, err := os.Getwd()
		assert.NoError(t, err)
		assert.Equal(t, before, after)
		assert.Contains(t, errOut.String(), "cd: ")
	})
}

// resolved follows symlinks so temp-dir indirection doesn't fail the
// comparison.
func resolved(t *testing.T, path string) string {
	t.Helper()
	out, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return out
}
