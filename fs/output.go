package fs

import (
	"io"
	"os"
	"path/filepath"
)

// OutputFile writes an output file atomically.
// Data is written to a temporary file next to the destination; Commit
// renames it into place and Abort discards it.
type OutputFile struct {
	path string
	tmp  *os.File
}

// CreateOutputFile starts writing the file at path.
func CreateOutputFile(path string) (*OutputFile, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, err
	}
	return &OutputFile{path: path, tmp: tmp}, nil
}

// Write writes to the temporary file.
func (f *OutputFile) Write(p []byte) (int, error) {
	return f.tmp.Write(p)
}

// Commit closes the temporary file and renames it to the destination,
// replacing any existing file.
func (f *OutputFile) Commit() error {
	if err := f.tmp.Close(); err != nil {
		_ = os.Remove(f.tmp.Name())
		return err
	}
	if err := os.Chmod(f.tmp.Name(), 0644); err != nil {
		_ = os.Remove(f.tmp.Name())
		return err
	}
	return os.Rename(f.tmp.Name(), f.path)
}

// Abort discards the temporary file.
func (f *OutputFile) Abort() error {
	_ = f.tmp.Close()
	return os.Remove(f.tmp.Name())
}

// WriteFile writes the output of write to path atomically.
// The destination is left untouched if write fails.
func WriteFile(path string, write func(w io.Writer) error) error {
	f, err := CreateOutputFile(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Abort()
		return err
	}
	return f.Commit()
}
