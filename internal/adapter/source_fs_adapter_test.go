package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/mutforge/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "Main.java"), "class Main {}\n")

	nestedDir := filepath.Join(root, "nested")
	mustMkdir(t, nestedDir)
	child := filepath.Join(nestedDir, "Child.java")
	writeTestFile(t, child, "class Child {}\n")

	var visited []string
	err := adapter.Walk(context.Background(), m.Path(root), func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		visited = append(visited, path)
		return nil
	})
	require.NoError(t, err)

	assert.True(t, containsPath(visited, child), "Walk() did not visit nested file")
	assert.True(t, containsPath(visited, filepath.Join(root, "Main.java")))
}

func TestLocalSourceFSAdapter_Walk_CancelledContext(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := adapter.Walk(ctx, m.Path(root), func(string, os.FileInfo, error) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestLocalSourceFSAdapter_WriteFileAtomic(t *testing.T) {
	t.Run("replaces content and keeps mode", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		path := filepath.Join(t.TempDir(), "run.sh")
		writeTestFile(t, path, "echo old\n")
		require.NoError(t, os.Chmod(path, 0o755))

		err := adapter.WriteFileAtomic(context.Background(), m.Path(path), []byte("echo new\n"))
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "echo new\n", string(content))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	})

	t.Run("creates missing file with default mode", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		path := filepath.Join(t.TempDir(), "new.txt")

		require.NoError(t, adapter.WriteFileAtomic(context.Background(), m.Path(path), []byte("x")))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, defaultFileMode, info.Mode().Perm())
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		dir := t.TempDir()
		path := filepath.Join(dir, "A.java")
		writeTestFile(t, path, "a\n")

		require.NoError(t, adapter.WriteFileAtomic(context.Background(), m.Path(path), []byte("b\n")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestLocalSourceFSAdapter_CopyDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "copy")

	mustMkdir(t, filepath.Join(src, "sub"))
	mustMkdir(t, filepath.Join(src, ".git"))
	writeTestFile(t, filepath.Join(src, "sub", "Main.java"), "class Main {}\n")
	writeTestFile(t, filepath.Join(src, ".git", "HEAD"), "ref: refs/heads/main\n")
	writeTestFile(t, filepath.Join(src, "mutants.log"), "1:LVR:...\n")
	writeTestFile(t, filepath.Join(src, "dist.tar.gz"), "gz")
	writeTestFile(t, filepath.Join(src, "build.xml"), "<project/>\n")
	require.NoError(t, os.Symlink("build.xml", filepath.Join(src, "link.xml")))

	exclude := []string{".git", "mutants.log", "*.tar.gz"}
	require.NoError(t, adapter.CopyDir(context.Background(), m.Path(src), m.Path(dst), exclude))

	assert.FileExists(t, filepath.Join(dst, "sub", "Main.java"))
	assert.FileExists(t, filepath.Join(dst, "build.xml"))
	assert.NoDirExists(t, filepath.Join(dst, ".git"))
	assert.NoFileExists(t, filepath.Join(dst, "mutants.log"))
	assert.NoFileExists(t, filepath.Join(dst, "dist.tar.gz"))

	target, err := os.Readlink(filepath.Join(dst, "link.xml"))
	require.NoError(t, err)
	assert.Equal(t, "build.xml", target)
}

func TestLocalSourceFSAdapter_CopyDir_InvalidPattern(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	err := adapter.CopyDir(context.Background(), m.Path(t.TempDir()), m.Path(t.TempDir()), []string{"["})
	require.Error(t, err)
}

func TestLocalSourceFSAdapter_FindFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	root := t.TempDir()

	deep := filepath.Join(root, "src", "main", "java", "org")
	require.NoError(t, os.MkdirAll(deep, 0o755))
	writeTestFile(t, filepath.Join(deep, "Dist.java"), "class Dist {}\n")

	got, err := adapter.FindFile(context.Background(), m.Path(root), "Dist.java")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(deep, "Dist.java")), got)

	got, err = adapter.FindFile(context.Background(), m.Path(root), "Missing.java")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = adapter.FindFile(context.Background(), m.Path(filepath.Join(root, "nope")), "Dist.java")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	rel, err := adapter.RelPath(ctx, "/tmp/project", "/tmp/project/sub/dir/File.java")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("sub", "dir", "File.java")), rel)

	joined := adapter.JoinPath(ctx, "/tmp", "project", "sub", "File.java")
	assert.Equal(t, m.Path(filepath.Join("/tmp", "project", "sub", "File.java")), joined)
}

func TestLocalSourceFSAdapter_MkdirAndRemove(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, adapter.MkdirAll(ctx, m.Path(dir)))
	info, err := adapter.FileInfo(ctx, m.Path(dir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, adapter.RemoveAll(ctx, m.Path(dir)))
	assert.NoDirExists(t, dir)
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
