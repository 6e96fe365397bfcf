//go:generate bash -c "abigen --abi contracts/abi/EthClient.json --type EthClient --pkg contracts --out contracts/eth_client.go"

package main
