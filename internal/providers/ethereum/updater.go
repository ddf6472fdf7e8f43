// Package ethereum repoints a token's on-chain metadata URI through the
// collection's registry contract.
package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/mythicforge/hero-forge/internal/adapter"
	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/logger"
)

// setTokenURI(bytes32 tokenKey, string uri)
const registryABI = `[{"inputs":[{"name":"tokenKey","type":"bytes32"},{"name":"uri","type":"string"}],"name":"setTokenURI","outputs":[],"stateMutability":"nonpayable","type":"function"}]`

const setTokenURIGasLimit = 200_000

// Config holds the chain connection and signing parameters
type Config struct {
	ChainID         int64
	RegistryAddress string
	PrivateKey      string
}

// Updater repoints token metadata URIs on chain
//
//go:generate mockgen -source=updater.go -destination=../../mocks/ethereum.go -package=mocks -mock_names=Updater=MockChainUpdater
type Updater interface {
	// UpdateMetadataURL points the token's registry entry at a new metadata
	// document. The transaction is submitted exactly once.
	UpdateMetadataURL(ctx context.Context, tokenAddress, metadataURL string) (string, error)
	// Close closes the underlying connection
	Close()
}

type updater struct {
	client      adapter.EthClient
	registry    common.Address
	registryABI abi.ABI
	chainID     *big.Int
	key         *ecdsa.PrivateKey
	from        common.Address
}

// NewUpdater creates an updater signing with the configured account
func NewUpdater(cfg Config, client adapter.EthClient) (Updater, error) {
	parsedABI, err := abi.JSON(strings.NewReader(registryABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse registry ABI: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse signing key: %w", err)
	}

	return &updater{
		client:      client,
		registry:    common.HexToAddress(cfg.RegistryAddress),
		registryABI: parsedABI,
		chainID:     big.NewInt(cfg.ChainID),
		key:         key,
		from:        crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// UpdateMetadataURL submits one setTokenURI transaction. Account reads
// (nonce, gas price) retry on transient failure; the send itself does not,
// a duplicate submission could double-spend the nonce.
func (u *updater) UpdateMetadataURL(ctx context.Context, tokenAddress, metadataURL string) (string, error) {
	var (
		nonce    uint64
		gasPrice *big.Int
	)

	readAccount := func() error {
		var err error
		nonce, err = u.client.PendingNonceAt(ctx, u.from)
		if err != nil {
			return fmt.Errorf("failed to read account nonce: %w", err)
		}
		gasPrice, err = u.client.SuggestGasPrice(ctx)
		if err != nil {
			return fmt.Errorf("failed to read gas price: %w", err)
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(readAccount, backoff.WithContext(b, ctx)); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrChainUpdateFailed, err)
	}

	// Registry entries are keyed by the hash of the token address
	tokenKey := crypto.Keccak256Hash([]byte(tokenAddress))

	data, err := u.registryABI.Pack("setTokenURI", tokenKey, metadataURL)
	if err != nil {
		return "", fmt.Errorf("%w: failed to pack calldata: %s", domain.ErrChainUpdateFailed, err)
	}

	tx := types.NewTransaction(nonce, u.registry, big.NewInt(0), setTokenURIGasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(u.chainID), u.key)
	if err != nil {
		return "", fmt.Errorf("%w: failed to sign transaction: %s", domain.ErrChainUpdateFailed, err)
	}

	if err := u.client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrChainUpdateFailed, err)
	}

	txHash := signed.Hash().Hex()
	logger.InfoCtx(ctx, "metadata URI update submitted",
		zap.String("tokenAddress", domain.ShortAddress(tokenAddress)),
		zap.String("txHash", txHash))

	return txHash, nil
}

// Close closes the underlying connection
func (u *updater) Close() {
	if u.client == nil {
		return
	}

	u.client.Close()
}
