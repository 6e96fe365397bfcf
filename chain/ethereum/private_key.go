package ethereum

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/snowfork/snowbridge/lightclient-harness/crypto/secp256k1"
)

var ErrPrivateKeyNotSupplied = errors.New("private key not supplied")

// ResolvePrivateKey loads the signer key either inline or from a file. The inline key wins
// when both are set.
func ResolvePrivateKey(privateKey, privateKeyFile string) (*secp256k1.Keypair, error) {
	var cleanedKey string

	if privateKey == "" {
		if privateKeyFile == "" {
			return nil, ErrPrivateKeyNotSupplied
		}
		contentBytes, err := os.ReadFile(privateKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load private key: %w", err)
		}
		cleanedKey = strings.TrimPrefix(strings.TrimSpace(string(contentBytes)), "0x")
	} else {
		cleanedKey = strings.TrimPrefix(strings.TrimSpace(privateKey), "0x")
	}

	keypair, err := secp256k1.NewKeypairFromString(cleanedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return keypair, nil
}
