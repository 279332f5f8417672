package http

import (
	"errors"

	"github.com/MKhiriev/go-feed-client/internal/backend"
)

// publicErrors are the failures whose text is safe to put into errorMsg.
// Anything else is reported as an internal error.
var publicErrors = []error{
	backend.ErrNeedLogin,
	backend.ErrWrongCredentials,
	backend.ErrArticleNotFound,
	backend.ErrInvalidPage,
	ErrInvalidPathParam,
	ErrMissingCredentials,
}

const internalErrorMsg = "internal error"

func envelopeFromError(err error) (int, string) {
	for _, target := range publicErrors {
		if errors.Is(err, target) {
			return backend.Code(target), target.Error()
		}
	}
	return backend.CodeFailed, internalErrorMsg
}
