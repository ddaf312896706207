package core

import "errors"

var (
	// ErrInvalidShape is returned when a primitive is constructed with a
	// non-positive radius or size, or a zero-length plane normal
	ErrInvalidShape = errors.New("invalid shape")

	// ErrEmptySceneFile is returned when a scene file has no content
	ErrEmptySceneFile = errors.New("scene file is empty")

	// ErrMissingSceneKey is returned when a scene file lacks a required top-level key
	ErrMissingSceneKey = errors.New("missing required scene key")

	// ErrInvalidImageSize is returned for non-positive image dimensions
	ErrInvalidImageSize = errors.New("invalid image size")

	// ErrUnknownScene is returned when a scene name matches no built-in scene or file
	ErrUnknownScene = errors.New("unknown scene")

	// ErrUnsupportedFormat is returned when an image file extension has no encoder
	ErrUnsupportedFormat = errors.New("unsupported image format")
)
