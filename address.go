package s256

import (
	"fmt"
)

// Network holds the version bytes used when encoding keys and addresses for
// one Bitcoin network.
type Network struct {
	Name             string
	PubKeyHashAddrID byte
	PrivateKeyID     byte
}

var (
	// MainNet is the Bitcoin main network.
	MainNet = &Network{
		Name:             "mainnet",
		PubKeyHashAddrID: 0x00,
		PrivateKeyID:     0x80,
	}

	// TestNet is the Bitcoin test network.
	TestNet = &Network{
		Name:             "testnet",
		PubKeyHashAddrID: 0x6f,
		PrivateKeyID:     0xef,
	}

	networks = []*Network{MainNet, TestNet}
)

func networkForAddrID(id byte) (*Network, error) {
	for _, net := range networks {
		if net.PubKeyHashAddrID == id {
			return net, nil
		}
	}
	str := fmt.Sprintf("unknown address version %#02x", id)
	return nil, makeError(ErrUnknownNetwork, str)
}

func networkForPrivateKeyID(id byte) (*Network, error) {
	for _, net := range networks {
		if net.PrivateKeyID == id {
			return net, nil
		}
	}
	str := fmt.Sprintf("unknown private key version %#02x", id)
	return nil, makeError(ErrUnknownNetwork, str)
}

// DecodeAddress decodes a pay-to-pubkey-hash address and returns the hash160
// it commits to and its network.
func DecodeAddress(addr string) ([20]byte, *Network, error) {
	var h [20]byte
	payload, version, err := CheckDecode(addr)
	if err != nil {
		return h, nil, err
	}
	if len(payload) != len(h) {
		str := fmt.Sprintf("malformed address: invalid payload length: %d", len(payload))
		return h, nil, makeError(ErrAddrInvalidLen, str)
	}
	net, err := networkForAddrID(version)
	if err != nil {
		return h, nil, err
	}
	copy(h[:], payload)
	return h, net, nil
}
