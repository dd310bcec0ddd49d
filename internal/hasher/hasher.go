// Package hasher derives short, stable content hashes for output file
// names and manifest fingerprints.
package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/DNS451/gray-level-cli/internal/posterize"
)

// NameLen is the hex length used in output file names.
const NameLen = 8

// ContentHash returns the xxHash64 of data as hex, truncated to hexLen
// characters when 0 < hexLen < 16.
func ContentHash(data []byte, hexLen int) string {
	return truncHex(xxhash.Sum64(data), hexLen)
}

// ContentHashReader is ContentHash over a stream.
func ContentHashReader(r io.Reader, hexLen int) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return truncHex(h.Sum64(), hexLen), nil
}

// TableHash fingerprints a quantization table by its RGB entries, so two
// parameter sets that produce the same colors share a fingerprint.
func TableHash(t posterize.Table) string {
	h := xxhash.New()
	buf := make([]byte, 0, 3*len(t))
	for _, c := range t {
		buf = append(buf, c.R, c.G, c.B)
	}
	h.Write(buf)
	return truncHex(h.Sum64(), 0)
}

func truncHex(v uint64, hexLen int) string {
	full := hex.EncodeToString(binary.BigEndian.AppendUint64(nil, v))
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}
