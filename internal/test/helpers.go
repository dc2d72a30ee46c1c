package test

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// FixedClock returns a clock function that always reports the given number of milliseconds
// since the Unix epoch
func FixedClock(unixMilli int64) func() time.Time {
	return func() time.Time {
		return time.UnixMilli(unixMilli)
	}
}

// Seed returns a deterministic 32-byte key seed where every byte is set to b
func Seed(b byte) []byte {
	ret := make([]byte, 32)
	for i := range ret {
		ret[i] = b
	}
	return ret
}
