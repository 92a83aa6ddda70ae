package driven

import "github.com/cyberknet/reloadluf/internal/core/domain"

// SessionCodec converts the persisted file list to and from the text
// stored in the config store. Encoding must round-trip losslessly.
type SessionCodec interface {
	// Encode serializes connections, preserving order.
	Encode(connections []domain.ConnectionInfo) (string, error)

	// Decode parses text produced by Encode. Malformed input returns an
	// error wrapping domain.ErrMalformedSession.
	Decode(text string) ([]domain.ConnectionInfo, error)
}
