package store

import "encoding/base64"

// Sealed token bytes are base64 encoded when they travel inside JSON
// record fields so the stored document stays valid UTF-8.

func encodeSealed(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func decodeSealed(encoded string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(encoded)
}
