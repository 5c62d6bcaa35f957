package formhttp

import "errors"

var (
	ErrStart                = errors.New("failed to start HTTP server")
	ErrShutdown             = errors.New("failed to shutdown HTTP server gracefully")
	ErrInvalidJSON          = errors.New("invalid JSON body")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("invalid form body")
)
