package settings

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	store, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNew_Path(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	store, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), baseDir)
	require.NoError(t, err)

	require.Equal(t, filepath.Join(baseDir, "YinYang"), store.Dir())
	require.Equal(t, filepath.Join(baseDir, "YinYang", "config.txt"), store.Path())
}

func TestReadPreference_DefaultWhenMissing(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	require.NoFileExists(t, store.Path())

	value, err := store.ReadPreference()
	require.NoError(t, err)
	require.False(t, value)

	contents, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	require.Equal(t, "false", string(contents))
}

func TestPreference_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, value := range []bool{true, false} {
		value := value
		t.Run(format(value), func(t *testing.T) {
			t.Parallel()

			store := testStore(t)
			require.NoError(t, store.WritePreference(value))

			got, err := store.ReadPreference()
			require.NoError(t, err)
			require.Equal(t, value, got)
		})
	}
}

func TestWritePreference_CreatesDirectory(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	require.NoDirExists(t, store.Dir())

	require.NoError(t, store.WritePreference(true))

	require.DirExists(t, store.Dir())
	contents, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	require.Equal(t, "true", string(contents))
}

func TestWritePreference_Overwrites(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	require.NoError(t, store.WritePreference(true))
	require.NoError(t, store.WritePreference(false))

	contents, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	require.Equal(t, "false", string(contents))
}

func TestReadPreference_Contents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		contents      string
		expected      bool
		expectedErrIs error
	}{
		{name: "true", contents: "true", expected: true},
		{name: "false", contents: "false", expected: false},
		{name: "surrounding whitespace", contents: "  true\r\n", expected: true},
		{name: "trailing newline", contents: "false\n", expected: false},
		{name: "wrong case", contents: "True", expectedErrIs: ErrConfigParse},
		{name: "numeric", contents: "1", expectedErrIs: ErrConfigParse},
		{name: "trailing content", contents: "true false", expectedErrIs: ErrConfigParse},
		{name: "empty", contents: "", expectedErrIs: ErrConfigParse},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := testStore(t)
			require.NoError(t, os.MkdirAll(store.Dir(), 0755))
			require.NoError(t, os.WriteFile(store.Path(), []byte(tt.contents), 0644))

			value, err := store.ReadPreference()
			if tt.expectedErrIs != nil {
				require.ErrorIs(t, err, tt.expectedErrIs)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, value)
		})
	}
}

func TestReadPreference_UnparseableIsNotReset(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	require.NoError(t, os.MkdirAll(store.Dir(), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("garbage"), 0644))

	_, err := store.ReadPreference()
	require.ErrorIs(t, err, ErrConfigParse)

	contents, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	require.Equal(t, "garbage", string(contents))
}

func TestWritePreference_DirectoryBlocked(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	// A regular file where the app directory should be makes MkdirAll fail
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, AppDirName), []byte("not a dir"), 0644))

	store, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), baseDir)
	require.NoError(t, err)

	require.ErrorIs(t, store.WritePreference(true), ErrConfigIO)

	_, err = store.ReadPreference()
	require.ErrorIs(t, err, ErrConfigIO)
}
