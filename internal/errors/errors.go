package errors

import (
	"errors"
	"fmt"
)

// Custom error types for the URL manager application

// ErrEmptyFileName is returned when an export is requested without a file name
var ErrEmptyFileName = errors.New("export file name is empty")

// ErrInvalidFileName is returned when the export name would escape the export directory
var ErrInvalidFileName = errors.New("export file name must not contain a path separator")

// ErrUnknownFormat is returned for an export format or file extension we don't handle
var ErrUnknownFormat = errors.New("unknown export format")

// ErrPositionOutOfRange is returned when a list position doesn't match any record
var ErrPositionOutOfRange = errors.New("list position out of range")

// ErrExportFailed is returned when writing an export file fails
type ErrExportFailed struct {
	Path   string
	Reason string
}

func (e ErrExportFailed) Error() string {
	return fmt.Sprintf("failed to export to %s: %s", e.Path, e.Reason)
}

// ErrImportFailed is returned when an imported file contains an unusable entry.
// Entry is 1-based; 0 means the file itself could not be read.
type ErrImportFailed struct {
	Path   string
	Entry  int
	Reason string
}

func (e ErrImportFailed) Error() string {
	if e.Entry == 0 {
		return fmt.Sprintf("failed to import %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("failed to import %s: entry %d: %s", e.Path, e.Entry, e.Reason)
}
