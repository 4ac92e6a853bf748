// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Network names an Ethereum network a provider or a contract is bound to.
type Network string

const (
	Mainnet Network = "mainnet"
	Rinkeby Network = "rinkeby"
	Local   Network = "local"
	Kovan   Network = "kovan"
	Sokol   Network = "sokol"
	Ropsten Network = "ropsten"

	// AllNetworks is the universal entry. When present it is used for every
	// network, regardless of any network-specific entry.
	AllNetworks Network = "all"
)

// DefaultNetwork is used by lookups that do not name a network.
const DefaultNetwork = Mainnet

// ContractName identifies a deployed contract (e.g. "AttestationLogic").
type ContractName string

// ContractBinding is the deployment of a contract on one network.
type ContractBinding struct {
	Address string `json:"address"`
}

// Providers maps a network to its JSON-RPC endpoint.
type Providers map[Network]string

// Contracts maps a contract to its deployments per network.
type Contracts map[ContractName]map[Network]ContractBinding
