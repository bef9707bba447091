package common

import (
	"encoding/hex"
	"strings"
)

// EncodeToString returns the lowercase string representation of hexBytes with
// the 0x prefix
func EncodeToString(hexBytes []byte) string {
	return "0x" + hex.EncodeToString(hexBytes)
}

// DecodeFromString converts a hex string, with or without the 0x prefix, to a
// byte slice
func DecodeFromString(hexString string) ([]byte, error) {
	s := hexString
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, NewErr("Hex", InvalidHex, hexString)
	}
	return b, nil
}
