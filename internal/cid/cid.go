package cid

import (
	"crypto/sha256"
	"io"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Sum reads r to EOF and returns the CIDv1 (raw codec, sha2-256) of its
// contents, along with the number of bytes read.
func Sum(r io.Reader) (string, int64, error) {
	h := sha256.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return "", n, err
	}

	mh, err := multihash.Encode(h.Sum(nil), multihash.SHA2_256)
	if err != nil {
		return "", n, err
	}

	return cid.NewCidV1(cid.Raw, mh).String(), n, nil
}

// Validate reports whether s parses as a CID
func Validate(s string) bool {
	_, err := cid.Decode(s)
	return err == nil
}
