package state

import (
	"fmt"

	ssz "github.com/ferranbt/fastssz"
)

const beaconBlockHeaderSize = 112

type BeaconBlockHeader struct {
	Slot          uint64 `json:"slot"`
	ProposerIndex uint64 `json:"proposer_index"`
	ParentRoot    []byte `json:"parent_root" ssz-size:"32"`
	StateRoot     []byte `json:"state_root" ssz-size:"32"`
	BodyRoot      []byte `json:"body_root" ssz-size:"32"`
}

// MarshalSSZ ssz marshals the BeaconBlockHeader object
func (b *BeaconBlockHeader) MarshalSSZ() ([]byte, error) {
	return b.MarshalSSZTo(make([]byte, 0, b.SizeSSZ()))
}

// MarshalSSZTo ssz marshals the BeaconBlockHeader object to a target array
func (b *BeaconBlockHeader) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf

	dst = ssz.MarshalUint64(dst, b.Slot)
	dst = ssz.MarshalUint64(dst, b.ProposerIndex)

	for _, root := range []struct {
		name  string
		value []byte
	}{
		{"ParentRoot", b.ParentRoot},
		{"StateRoot", b.StateRoot},
		{"BodyRoot", b.BodyRoot},
	} {
		if len(root.value) != 32 {
			err = fmt.Errorf("%w: BeaconBlockHeader.%s has %d bytes", ssz.ErrBytesLength, root.name, len(root.value))
			return
		}
		dst = append(dst, root.value...)
	}

	return
}

// UnmarshalSSZ ssz unmarshals the BeaconBlockHeader object
func (b *BeaconBlockHeader) UnmarshalSSZ(buf []byte) error {
	if len(buf) != beaconBlockHeaderSize {
		return ssz.ErrSize
	}

	b.Slot = ssz.UnmarshallUint64(buf[0:8])
	b.ProposerIndex = ssz.UnmarshallUint64(buf[8:16])
	b.ParentRoot = append(make([]byte, 0, 32), buf[16:48]...)
	b.StateRoot = append(make([]byte, 0, 32), buf[48:80]...)
	b.BodyRoot = append(make([]byte, 0, 32), buf[80:112]...)

	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the BeaconBlockHeader object
func (b *BeaconBlockHeader) SizeSSZ() int {
	return beaconBlockHeaderSize
}

// HashTreeRoot ssz hashes the BeaconBlockHeader object
func (b *BeaconBlockHeader) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BeaconBlockHeader object with a hasher
func (b *BeaconBlockHeader) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	hh.PutUint64(b.Slot)
	hh.PutUint64(b.ProposerIndex)

	for _, root := range [][]byte{b.ParentRoot, b.StateRoot, b.BodyRoot} {
		if len(root) != 32 {
			err = ssz.ErrBytesLength
			return
		}
		hh.PutBytes(root)
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the BeaconBlockHeader object
func (b *BeaconBlockHeader) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(b)
}
