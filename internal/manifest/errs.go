package manifest

import "errors"

var (
	ErrUnsupportedBrowser = errors.New("unsupported browser")
	ErrResourceResolve    = errors.New("failed to resolve resource path")
	ErrIO                 = errors.New("io error")
	ErrSidecarNotFound    = errors.New("failed to locate sidecar binary")
	ErrDirectoryNotFound  = errors.New("directory does not exist")
)
