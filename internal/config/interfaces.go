package config

import "os"

//go:generate mockgen -source=interfaces.go -destination=../mock/source_reader_mock.go -package=mock

// SourceReader reads the raw bytes of a configuration file.
//
// Implementations must return an error satisfying errors.Is(err,
// fs.ErrNotExist) for a missing file; the loader skips those and treats any
// other error as fatal.
type SourceReader interface {
	ReadSource(path string) ([]byte, error)
}

// fileReader is the default [SourceReader] backed by the local filesystem.
type fileReader struct{}

// NewFileReader returns a [SourceReader] that reads from the local
// filesystem.
func NewFileReader() SourceReader {
	return fileReader{}
}

func (fileReader) ReadSource(path string) ([]byte, error) {
	return os.ReadFile(path)
}
