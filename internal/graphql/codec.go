package graphql

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// EncodeGlobalID builds the opaque node identifier the API exposes instead
// of raw primary keys: base64 of "TypeName:localId".
func EncodeGlobalID(typeName, id string) string {
	return base64.StdEncoding.EncodeToString([]byte(typeName + ":" + id))
}

// DecodeGlobalID reverses EncodeGlobalID. It fails with ErrMalformedID when
// the input is not valid base64/UTF-8 or the decoded value does not split
// into exactly a type name and a local id.
func DecodeGlobalID(globalID string) (typeName, id string, err error) {
	raw, err := base64.StdEncoding.DecodeString(globalID)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrMalformedID, err)
	}
	if !utf8.Valid(raw) {
		return "", "", fmt.Errorf("%w: not valid UTF-8", ErrMalformedID)
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedID, raw)
	}
	return parts[0], parts[1], nil
}

// EncodeCursor builds the opaque pagination token for an offset into an
// ordered result set: base64 of the decimal string.
func EncodeCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

// DecodeCursor is the inverse of EncodeCursor. No production code path needs
// it (cursors are write-only towards the API) but the encoding must stay
// decodable.
func DecodeCursor(cursor string) (int, error) {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedID, err)
	}
	offset, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedID, err)
	}
	return offset, nil
}
