package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// HexLength is the length of a full hex-encoded digest.
const HexLength = sha256.Size * 2

// HashFile streams the entire content of the file at path through SHA-256
// and returns the lowercase hex digest. The whole file is always read; a
// read error is returned, never swallowed.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %q: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashFileN returns the first n hex characters of the full digest of path.
// The truncation happens after hashing the complete file content.
func HashFileN(path string, n int) (string, error) {
	if n < 1 || n > HexLength {
		return "", fmt.Errorf("digest prefix length %d out of range 1..%d", n, HexLength)
	}

	digest, err := HashFile(path)
	if err != nil {
		return "", err
	}

	return digest[:n], nil
}
