package core

import "errors"

var (
	// ErrFetchFailed is returned when a remote file could not be retrieved
	ErrFetchFailed = errors.New("fetch failed")
	// ErrInvalidArchive is returned when fetched bytes are not a readable zip archive
	ErrInvalidArchive = errors.New("invalid archive")
	// ErrMissingRequiredField is returned when an input record lacks a field the manifests need
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrShimPatchFailed is returned when the wrapper class template cannot be patched
	ErrShimPatchFailed = errors.New("shim patch failed")
)
