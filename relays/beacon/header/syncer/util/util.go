package util

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/snowfork/go-substrate-rpc-client/v4/types"
)

var ErrInvalidLength = errors.New("invalid byte length")

func ScaleBranchToString(proofs []types.H256) []string {
	branch := []string{}

	for _, proof := range proofs {
		branch = append(branch, proof.Hex())
	}

	return branch
}

func ProofBranchToScale(proofs []string) ([]types.H256, error) {
	branch := []types.H256{}

	for _, proof := range proofs {
		leaf, err := HexStringTo32Bytes(proof)
		if err != nil {
			return nil, fmt.Errorf("convert proof leaf: %w", err)
		}
		branch = append(branch, types.NewH256(leaf[:]))
	}

	return branch, nil
}

func HexStringToByteArray(hexString string) ([]byte, error) {
	bytes, err := hex.DecodeString(strings.TrimPrefix(hexString, "0x"))
	if err != nil {
		return []byte{}, err
	}

	return bytes, nil
}

func BytesToHexString(bytes []byte) string {
	return "0x" + hex.EncodeToString(bytes)
}

func HexStringToPublicKey(hexString string) ([48]byte, error) {
	var pubkeyBytes [48]byte
	err := decodeFixed(hexString, pubkeyBytes[:])
	return pubkeyBytes, err
}

func HexStringTo32Bytes(hexString string) ([32]byte, error) {
	var bytes [32]byte
	err := decodeFixed(hexString, bytes[:])
	return bytes, err
}

func HexStringTo96Bytes(hexString string) ([96]byte, error) {
	var bytes [96]byte
	err := decodeFixed(hexString, bytes[:])
	return bytes, err
}

func HexStringToHash(hexString string) (common.Hash, error) {
	bytes, err := HexStringTo32Bytes(hexString)
	if err != nil {
		return common.Hash{}, err
	}

	return common.Hash(bytes), nil
}

// decodeFixed decodes hexString into out, which must be filled exactly.
func decodeFixed(hexString string, out []byte) error {
	bytes, err := HexStringToByteArray(hexString)
	if err != nil {
		return err
	}
	if len(bytes) != len(out) {
		return fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidLength, len(out), len(bytes))
	}

	copy(out, bytes)
	return nil
}

// ToUint64 parses the decimal quantities beacon nodes return as strings.
func ToUint64(stringVal string) (uint64, error) {
	intVal, err := strconv.ParseUint(stringVal, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q as uint64: %w", stringVal, err)
	}

	return intVal, nil
}
