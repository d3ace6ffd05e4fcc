package object

import (
	"encoding/hex"
	"fmt"

	gocid "github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
	_ "github.com/multiformats/go-multihash/register/blake3"
)

// ID is the textual CID of a stored object (CIDv1, base32 multibase).
// Blobs use the raw codec and commits the dag-json codec.
type ID string

// ShortLen is the number of digest hex characters shown for abbreviated ids.
const ShortLen = 7

func (id ID) String() string { return string(id) }

func (id ID) cid() (gocid.Cid, error) {
	_, data, err := multibase.Decode(string(id))
	if err != nil {
		return gocid.Undef, fmt.Errorf("decode id %q: %w", id, err)
	}
	c, err := gocid.Cast(data)
	if err != nil {
		return gocid.Undef, fmt.Errorf("cast id %q: %w", id, err)
	}
	return c, nil
}

// IsCommit reports whether id names a commit record.
func (id ID) IsCommit() bool {
	c, err := id.cid()
	return err == nil && c.Type() == gocid.DagJSON
}

// Digest returns the hex encoding of the content digest. Abbreviated ids
// are prefixes of it.
func (id ID) Digest() string {
	c, err := id.cid()
	if err != nil {
		return ""
	}
	mh, err := multihash.Decode(c.Hash())
	if err != nil {
		return ""
	}
	return hex.EncodeToString(mh.Digest)
}

// Short is the abbreviated form used in log output.
func (id ID) Short() string {
	d := id.Digest()
	if len(d) > ShortLen {
		return d[:ShortLen]
	}
	return d
}

// ParseID validates s as an object id.
func ParseID(s string) (ID, error) {
	id := ID(s)
	if _, err := id.cid(); err != nil {
		return "", err
	}
	return id, nil
}

func encodeCID(c gocid.Cid) ID {
	encoded, _ := multibase.Encode(multibase.Base32, c.Bytes())
	return ID(encoded)
}

// hasher computes ids for one multihash function.
type hasher struct {
	code uint64
}

func newHasher(name string) (hasher, error) {
	code, ok := multihash.Names[name]
	if !ok {
		return hasher{}, fmt.Errorf("unknown hash function %q", name)
	}
	return hasher{code: code}, nil
}

func (h hasher) sum(codec uint64, data []byte) (ID, error) {
	mh, err := multihash.Sum(data, h.code, -1)
	if err != nil {
		return "", fmt.Errorf("multihash: %w", err)
	}
	return encodeCID(gocid.NewCidV1(codec, mh)), nil
}

// check re-hashes data with the function and codec recorded in id.
func check(id ID, data []byte) (bool, error) {
	c, err := id.cid()
	if err != nil {
		return false, err
	}
	got, err := c.Prefix().Sum(data)
	if err != nil {
		return false, fmt.Errorf("rehash %s: %w", id, err)
	}
	return got.Equals(c), nil
}
