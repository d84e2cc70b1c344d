package content

import (
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/text/unicode/norm"
)

// Size is the length of a digest in bytes.
const Size = blake2b.Size256

var crockford = base32.NewEncoding("0123456789ABCDEFGHJKMNPQRSTVWXYZ").WithPadding(base32.NoPadding)

// ContentHash identifies the opaque byte payload of a single content-addressed
// write (see package cas). Two writes of identical bytes always produce the
// same ContentHash, regardless of tenancy or actor.
type ContentHash [Size]byte

// String returns the Crockford base32 encoding of h.
func (h ContentHash) String() string {
	return crockford.EncodeToString(h[:])
}

// IsZero reports whether h is the zero value, i.e. no content has been
// hashed into it yet.
func (h ContentHash) IsZero() bool {
	return h == ContentHash{}
}

// HashBytes computes the ContentHash of data.
func HashBytes(data []byte) ContentHash {
	return ContentHash(blake2b.Sum256(data))
}

// MerkleTreeHash identifies a node together with the Merkle-combined
// hashes of everything reachable beneath it in a snapshot graph. Unlike
// ContentHash, a MerkleTreeHash depends on graph structure, not just on
// one node's own content.
type MerkleTreeHash [Size]byte

// String returns the Crockford base32 encoding of h.
func (h MerkleTreeHash) String() string {
	return crockford.EncodeToString(h[:])
}

// IsZero reports whether h is the zero value.
func (h MerkleTreeHash) IsZero() bool {
	return h == MerkleTreeHash{}
}

// Hasher incrementally builds a digest from a sequence of typed inputs,
// used by package weight to compute a node's own hash and by package
// snapshot to mix a node's hash with its children's Merkle hashes. The
// zero Hasher has no underlying digest and is not usable; construct one
// with NewHasher.
//
// Hasher is not safe for concurrent use; each call site should build one
// per digest it computes.
type Hasher struct {
	h hash.Hash
}

// NewHasher returns a ready-to-use Hasher.
func NewHasher() *Hasher {
	hh, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails for an invalid key or output size,
		// neither of which applies to this fixed, keyless configuration.
		panic(fmt.Sprintf("content: constructing blake2b hasher: %v", err))
	}
	return &Hasher{h: hh}
}

// WriteBytes mixes raw bytes into the digest, length-prefixed so that
// ("ab","c") and ("a","bc") never collide.
func (d *Hasher) WriteBytes(b []byte) *Hasher {
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(b)))
	_, _ = d.h.Write(lenBuf[:])
	_, _ = d.h.Write(b)
	return d
}

// WriteString normalizes s to Unicode NFC before mixing it in, so two
// strings that are canonically equivalent but differ in Unicode
// normalization form (for example, the same accented character typed on
// different keyboard layouts) always hash identically.
func (d *Hasher) WriteString(s string) *Hasher {
	return d.WriteBytes([]byte(norm.NFC.String(s)))
}

// WriteUint64 mixes a fixed-width big-endian integer into the digest.
func (d *Hasher) WriteUint64(v uint64) *Hasher {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, _ = d.h.Write(buf[:])
	return d
}

// WriteBool mixes a single discriminating byte into the digest.
func (d *Hasher) WriteBool(v bool) *Hasher {
	if v {
		return d.WriteBytes([]byte{1})
	}
	return d.WriteBytes([]byte{0})
}

// SumContent finalizes the digest as a ContentHash. The Hasher must not
// be reused after calling Sum*.
func (d *Hasher) SumContent() ContentHash {
	return ContentHash(d.sum())
}

// SumMerkle finalizes the digest as a MerkleTreeHash.
func (d *Hasher) SumMerkle() MerkleTreeHash {
	return MerkleTreeHash(d.sum())
}

func (d *Hasher) sum() [Size]byte {
	var out [Size]byte
	copy(out[:], d.h.Sum(nil))
	return out
}
