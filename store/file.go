package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/oasdraft/internal/fileutil"
	"github.com/erraggy/oasdraft/internal/pathutil"
	"github.com/erraggy/oasdraft/oaserrors"
)

const backendFile = "file"

// FileKV stores each key as a JSON file inside a directory.
type FileKV struct {
	dir string
}

// NewFileKV returns a FileKV rooted at dir. The directory is created on the
// first Set.
func NewFileKV(dir string) (*FileKV, error) {
	abs, err := pathutil.SanitizeOutputPath(dir)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "store dir", Value: dir, Cause: err}
	}
	return &FileKV{dir: abs}, nil
}

// Dir returns the absolute directory the store writes to.
func (f *FileKV) Dir() string { return f.dir }

func (f *FileKV) path(op, key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", &oaserrors.StorageError{Backend: backendFile, Op: op, Key: key, Cause: errors.New("invalid key")}
	}
	return filepath.Join(f.dir, key+".json"), nil
}

// Get implements KV.
func (f *FileKV) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := f.path("get", key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is built from a validated key inside the store dir
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &oaserrors.StorageError{Backend: backendFile, Op: "get", Key: key, Cause: err}
	}
	return data, nil
}

// Set implements KV.
func (f *FileKV) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := f.path("set", key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, fileutil.OwnerDir); err != nil {
		return &oaserrors.StorageError{Backend: backendFile, Op: "set", Key: key, Cause: err}
	}
	if err := fileutil.WriteFileAtomic(path, value, fileutil.OwnerReadWrite); err != nil {
		return &oaserrors.StorageError{Backend: backendFile, Op: "set", Key: key, Cause: err}
	}
	return nil
}

// Delete implements KV.
func (f *FileKV) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := f.path("delete", key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &oaserrors.StorageError{Backend: backendFile, Op: "delete", Key: key, Cause: fmt.Errorf("removing file: %w", err)}
	}
	return nil
}
