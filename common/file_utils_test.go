package common

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	type config struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	testDir, err := os.MkdirTemp("", "file-utils-test")
	require.NoError(t, err)

	defer os.RemoveAll(testDir)

	filePath := path.Join(testDir, "config.json")
	require.NoError(t, os.WriteFile(filePath, []byte(`{"name": "sender", "count": 10}`), 0660))

	loaded, err := LoadJSON[config](filePath)
	require.NoError(t, err)
	require.Equal(t, &config{Name: "sender", Count: 10}, loaded)

	_, err = LoadJSON[config](path.Join(testDir, "missing.json"))
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filePath, []byte(`not json`), 0660))

	_, err = LoadJSON[config](filePath)
	require.Error(t, err)
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	t.Parallel()

	testDir, err := os.MkdirTemp("", "file-utils-test")
	require.NoError(t, err)

	defer os.RemoveAll(testDir)

	dirPath := path.Join(testDir, "a", "b")

	require.NoError(t, CreateDirectoryIfNotExists(dirPath, 0770))
	require.DirExists(t, dirPath)

	// already existing directory is not an error
	require.NoError(t, CreateDirectoryIfNotExists(dirPath, 0770))
}
