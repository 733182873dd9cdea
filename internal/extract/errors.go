package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResponse is returned when the model call fails or the model
	// returns no usable text. The caller asks the user to resend; nothing
	// is retried here.
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrInvalidPayload is returned when the model response cannot be
	// parsed into the expected shape for the requested mode.
	ErrInvalidPayload = errors.New("invalid payload from language model")
)

// rawPrefixLimit bounds how much of a malformed response is carried in an
// error for diagnostics. Never attach the full dump.
const rawPrefixLimit = 100

func invalidPayload(reason string, raw string) error {
	if len(raw) > rawPrefixLimit {
		raw = raw[:rawPrefixLimit]
	}
	return fmt.Errorf("%w: %s: %q", ErrInvalidPayload, reason, raw)
}
