package moniker

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a BLAKE2b-256 digest of the index contents.
// Identical member tables always produce identical fingerprints.
//
// Each record contributes its code, its name and its alias, if any, in
// declaration order, so two indexes agree on the fingerprint exactly when
// they read and write the same way.
func (x *Index[E]) Fingerprint() [32]byte {
	var buf []byte
	for _, v := range x.order {
		rec := x.records[v]
		buf = binary.BigEndian.AppendUint64(buf, uint64(rec.Code))
		buf = appendField(buf, rec.Name)
		if rec.HasAlias {
			buf = append(buf, 1)
			buf = appendField(buf, rec.Alias)
		} else {
			buf = append(buf, 0)
		}
	}
	return blake2b.Sum256(buf)
}

// FingerprintHex returns Fingerprint as a hex string.
func (x *Index[E]) FingerprintHex() string {
	sum := x.Fingerprint()
	return hex.EncodeToString(sum[:])
}

// appendField writes a length-prefixed string so adjacent fields cannot alias.
func appendField(buf []byte, s string) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}
