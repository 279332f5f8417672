package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-feed-client/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// decodeEnvelope maps the HTTP status, then unwraps the envelope. Envelope
// codes listed in unauthorized are reported as [ErrUnauthorized] wrapping the
// [*DomainError].
func decodeEnvelope[T any](resp *resty.Response, unauthorized map[int]struct{}) (T, error) {
	var zero T

	if err := mapHTTPError(resp); err != nil {
		return zero, err
	}

	var env models.Envelope[T]
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}

	if !env.OK() {
		domainErr := &DomainError{Code: env.ErrorCode, Message: env.ErrorMsg}
		if _, ok := unauthorized[env.ErrorCode]; ok {
			return zero, fmt.Errorf("%w: %w", ErrUnauthorized, domainErr)
		}
		return zero, domainErr
	}

	return env.Data, nil
}
