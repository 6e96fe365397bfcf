// Copyright 2020 ChainSafe Systems
// SPDX-License-Identifier: LGPL-3.0-only

/*
Package crypto describes the keypairs used to sign transactions on the chain hosting the light
client contract.

# Keypairs

Every Keypair can be written to and read from raw bytes with Encode and Decode, and exposes the
Address and PublicKey of the signer.

The only supported type is secp256k1, shared by the sandbox chain and live networks:
https://en.bitcoin.it/wiki/Secp256k1
*/
package crypto

type KeyType = string

const Secp256k1Type KeyType = "secp256k1"

type Keypair interface {
	// Encode is used to write the key to a file
	Encode() []byte
	// Decode is used to retrieve a key from a file
	Decode([]byte) error
	// Address provides the address for the keypair
	Address() string
	// PublicKey returns the keypair's public key an encoded a string
	PublicKey() string
}
