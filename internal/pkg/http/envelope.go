package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	pkghttp "github.com/klwxsrx/loopon-client/pkg/http"
)

const ResultSuccess = "SUCCESS"

var errNoEnvelopeResult = errors.New("envelope result is missing")

// Envelope is the uniform wrapper of every JSON response of the backend.
type Envelope[T any] struct {
	Result  string  `json:"result"`
	Message *string `json:"message"`
	Data    *T      `json:"data"`
}

func (e Envelope[T]) message(fallback string) string {
	if e.Message == nil || *e.Message == "" {
		return fallback
	}
	return *e.Message
}

// Send executes the request and unwraps the data of a successful envelope.
func Send[T any](ctx context.Context, c *RequestClient, route pkghttp.Route, opts ...RequestOption) (T, error) {
	var result T
	resp, err := c.execute(ctx, route, opts)
	if err != nil {
		return result, err
	}

	code := resp.StatusCode()
	if isUnauthorizedStatus(code) {
		return result, fmt.Errorf("%w: %s responded with %d", ErrUnauthorized, route.Name(), code)
	}

	envelope, err := decodeEnvelope[T](resp.Body())
	if err != nil {
		switch {
		case isErrorStatus(code):
			return result, &ServerError{StatusCode: code, Message: defaultServerErrorMessage}
		case !isSuccessfulStatus(code):
			return result, fmt.Errorf("%w: %s responded with %d", ErrUnknown, route.Name(), code)
		default:
			return result, fmt.Errorf("%w: %s: %w", ErrDecoding, route.Name(), err)
		}
	}

	if envelope.Result != ResultSuccess {
		return result, &ServerError{StatusCode: code, Message: envelope.message(defaultServerErrorMessage)}
	}
	if envelope.Data == nil {
		return result, &ServerError{StatusCode: code, Message: "no data"}
	}

	return *envelope.Data, nil
}

// SendExpectStatus treats any 2xx status as success without looking at the body.
func SendExpectStatus(ctx context.Context, c *RequestClient, route pkghttp.Route, opts ...RequestOption) error {
	resp, err := c.execute(ctx, route, opts)
	if err != nil {
		return err
	}

	code := resp.StatusCode()
	if isSuccessfulStatus(code) {
		return nil
	}
	if isUnauthorizedStatus(code) {
		return fmt.Errorf("%w: %s responded with %d", ErrUnauthorized, route.Name(), code)
	}

	message := defaultServerErrorMessage
	if envelope, err := decodeEnvelope[json.RawMessage](resp.Body()); err == nil {
		message = envelope.message(message)
	}
	return &ServerError{StatusCode: code, Message: message}
}

func decodeEnvelope[T any](body []byte) (Envelope[T], error) {
	var envelope Envelope[T]
	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return envelope, err
	}
	if envelope.Result == "" {
		return envelope, errNoEnvelopeResult
	}
	return envelope, nil
}
