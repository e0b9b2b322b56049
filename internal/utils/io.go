package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/rcli/internal/errors"
)

// StdinSentinel selects standard input wherever a path is expected.
const StdinSentinel = "-"

// GetReader returns stdin for "-" and an open file otherwise.
// The caller must close the returned reader.
func GetReader(input string) (io.ReadCloser, error) {
	if input == StdinSentinel {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrReadInput, err)
	}
	return f, nil
}

// ReadAll reads r to the end.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrReadInput, err)
	}
	return data, nil
}

// ReadSource opens input with GetReader and reads it completely.
func ReadSource(input string) ([]byte, error) {
	r, err := GetReader(input)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadAll(r)
}

// WriteFile writes data to path with the given permissions.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrWriteOutput, err)
	}
	return nil
}

// OutputFile is one destination of WriteFiles.
type OutputFile struct {
	Path string
	Data []byte
	Perm os.FileMode
}

// WriteFiles writes every file or none of them. Each file is staged in a
// temporary file next to its destination and renamed into place once all
// of them are written. If a rename fails, destinations already replaced are
// restored to their previous contents.
func WriteFiles(files []OutputFile) error {
	previous := make([]*OutputFile, len(files))
	for i, f := range files {
		info, err := os.Lstat(f.Path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: %w", kerrors.ErrWriteOutput, err)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s is not a regular file", kerrors.ErrWriteOutput, f.Path)
		}
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return fmt.Errorf("%w: %w", kerrors.ErrWriteOutput, err)
		}
		previous[i] = &OutputFile{Path: f.Path, Data: data, Perm: info.Mode().Perm()}
	}

	staged := make([]string, 0, len(files))
	removeStaged := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}
	for _, f := range files {
		tmp, err := stageFile(f)
		if err != nil {
			removeStaged()
			return err
		}
		staged = append(staged, tmp)
	}

	for i, f := range files {
		if err := os.Rename(staged[i], f.Path); err != nil {
			staged = staged[i:]
			removeStaged()
			restoreFiles(files[:i], previous[:i])
			return fmt.Errorf("%w: %w", kerrors.ErrWriteOutput, err)
		}
	}
	return nil
}

func stageFile(f OutputFile) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(f.Path), "."+filepath.Base(f.Path)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("%w: %w", kerrors.ErrWriteOutput, err)
	}
	name := tmp.Name()

	_, err = tmp.Write(f.Data)
	if err == nil {
		err = tmp.Chmod(f.Perm)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("%w: %w", kerrors.ErrWriteOutput, err)
	}
	return name, nil
}

// restoreFiles puts back what WriteFiles replaced; files that did not exist
// before are removed.
func restoreFiles(written []OutputFile, previous []*OutputFile) {
	for i, f := range written {
		if previous[i] == nil {
			_ = os.Remove(f.Path)
			continue
		}
		_ = os.WriteFile(f.Path, previous[i].Data, previous[i].Perm)
	}
}
