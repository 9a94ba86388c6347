package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	RequestIDSize  = 16
	nanoidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NanoIDSize returns a random alphanumeric id of the given length, or of
// RequestIDSize when size is not positive.
func NanoIDSize(size int) string {
	if size <= 0 {
		size = RequestIDSize
	}

	return gonanoid.MustGenerate(nanoidAlphabet, size)
}
