package registry

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// fingerprintHeadBytes is how much of the file head feeds the digest.
// GGUF metadata lives at the front of the file, so the head plus the
// exact size distinguishes models without reading gigabytes.
const fingerprintHeadBytes = 1 << 20

// Fingerprint returns a stable content fingerprint for a model file:
// blake3 over the file size and the first MiB of content.
func Fingerprint(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return "", err
	}

	h := blake3.New()
	var sz [8]byte
	binary.LittleEndian.PutUint64(sz[:], uint64(fi.Size()))
	_, _ = h.Write(sz[:])
	if _, err := io.Copy(h, io.LimitReader(f, fingerprintHeadBytes)); err != nil {
		return "", err
	}
	sum := h.Sum(nil)
	return fmt.Sprintf("blake3:%s", hex.EncodeToString(sum[:16])), nil
}
