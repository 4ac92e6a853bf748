// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-attestation-kit/models"

// ContractAddressFor returns the address contract is deployed at on network.
// A universal ("all") binding always wins over the network-specific one. An
// empty network means [models.DefaultNetwork]. A nil env has no bindings.
func ContractAddressFor(env *models.Environment, contract models.ContractName, network models.Network) (string, error) {
	network = orDefault(network)
	if env == nil {
		return "", &BindingError{Contract: contract, Network: network, Err: ErrUnknownContractBinding}
	}

	bindings := env.Contracts[contract]
	if b, ok := bindings[models.AllNetworks]; ok {
		return b.Address, nil
	}
	if b, ok := bindings[network]; ok {
		return b.Address, nil
	}

	return "", &BindingError{Contract: contract, Network: network, Err: ErrUnknownContractBinding}
}

// ProviderFor returns the JSON-RPC endpoint serving network. A universal
// ("all") endpoint always wins over the network-specific one. A nil env has
// no endpoints.
func ProviderFor(env *models.Environment, network models.Network) (string, error) {
	network = orDefault(network)
	if env == nil {
		return "", &BindingError{Network: network, Err: ErrUnknownProvider}
	}

	if url := env.Providers[models.AllNetworks]; url != "" {
		return url, nil
	}
	if url := env.Providers[network]; url != "" {
		return url, nil
	}

	return "", &BindingError{Network: network, Err: ErrUnknownProvider}
}

func orDefault(network models.Network) models.Network {
	if network == "" {
		return models.DefaultNetwork
	}
	return network
}
