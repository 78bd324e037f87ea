package reference

import "fmt"

// MissingFileError indicates that a caller-supplied reference file path does
// not exist. Fatal.
type MissingFileError struct {
	Path string
	Err  error
}

func (e MissingFileError) Error() string {
	return fmt.Sprintf("reference file %s does not exist", e.Path)
}

func (e MissingFileError) Unwrap() error {
	return e.Err
}

// MissingColumnError indicates that a caller-supplied reference file lacks a
// required column. Fatal.
type MissingColumnError struct {
	Column string
	Path   string
}

func (e MissingColumnError) Error() string {
	return fmt.Sprintf("reference file %s lacks required column %q", e.Path, e.Column)
}
