package cargoconfig

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/dimensionhq/fleet/internal/fsutil"
)

// WriteError reports that config.toml could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write configuration %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteResult describes a completed write.
type WriteResult struct {
	Path    string
	Digest  string
	Changed bool
}

// Write renders doc and replaces the file at path with it. The parent
// directory is created when missing. A failed write is not retried and
// leaves any previous file untouched.
func Write(doc *Document, path string) (WriteResult, error) {
	data, err := doc.Marshal()
	if err != nil {
		return WriteResult{}, err
	}

	sum := blake3.Sum256(data)
	result := WriteResult{
		Path:    path,
		Digest:  hex.EncodeToString(sum[:]),
		Changed: true,
	}
	if previous, err := fsutil.ReadFileScoped(path); err == nil {
		prevSum := blake3.Sum256(previous)
		result.Changed = !bytes.Equal(prevSum[:], sum[:])
	}

	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return WriteResult{}, &WriteError{Path: path, Err: err}
	}
	return result, nil
}
