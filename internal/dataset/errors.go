package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrMissingArgument    = errors.New("please specify a directory when downloading datasets")
	ErrURLParse           = errors.New("invalid resource URL")
	ErrMissingPathSegment = errors.New("resource URL has no file name")
	ErrFilesystem         = errors.New("filesystem error")
	ErrTransport          = errors.New("transport error")
	ErrDecode             = errors.New("gzip decode error")
)

// FetchError ties one of the error kinds above to the file being processed.
type FetchError struct {
	Kind error
	File string
	Err  error
}

func (e *FetchError) Error() string {
	msg := e.Kind.Error()
	if e.File != "" {
		msg = fmt.Sprintf("%s: %s", e.File, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newFetchError(kind error, file string, err error) *FetchError {
	return &FetchError{Kind: kind, File: file, Err: err}
}
