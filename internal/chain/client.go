package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

const (
	readTimeout  = 10 * time.Second
	minedBackoff = 2 * time.Second
)

// Client is the single point of contact with the RPC endpoint. It owns one
// read provider and at most one signer; without a signer every write fails
// fast with ErrSignerNotConfigured.
type Client struct {
	logs    *zap.SugaredLogger
	client  EthClient
	key     *ecdsa.PrivateKey
	sender  common.Address
	chainID *big.Int
}

func NewClient(logger *zap.SugaredLogger, ethClient EthClient, privateKeyHex string) (*Client, error) {
	c := &Client{
		logs:   logger,
		client: ethClient,
	}

	if privateKeyHex == "" {
		return c, nil
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse admin private key: %w", err)
	}

	c.key = key
	c.sender = crypto.PubkeyToAddress(key.PublicKey)
	return c, nil
}

func (c *Client) ReadOnly() bool {
	return c.key == nil
}

func (c *Client) Sender() common.Address {
	return c.sender
}

// BlockNumber is a liveness probe: it never fails, returning 0 when the RPC
// endpoint is unreachable.
func (c *Client) BlockNumber(ctx context.Context) uint64 {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	block, err := c.client.BlockNumber(ctx)
	if err != nil {
		c.logs.Debugw("block number probe failed", "error", err)
		return 0
	}
	return block
}

// Call performs a read-only contract invocation and returns the unpacked
// outputs.
func (c *Client) Call(ctx context.Context, contract Contract, method string, args ...any) ([]any, error) {
	input, err := contract.ABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s.%s: %w", contract.Name, method, err)
	}

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	output, err := c.client.CallContract(ctx, ethereum.CallMsg{
		From: c.sender,
		To:   &contract.Address,
		Data: input,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s.%s: %w: %w", contract.Name, method, ErrChainUnavailable, err)
	}

	results, err := contract.ABI.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("unpack %s.%s: %w", contract.Name, method, err)
	}

	return results, nil
}

// Send signs and submits a state-changing transaction. Gas estimation runs
// first, so reverts surface here with the node's revert reason before any
// gas is spent.
func (c *Client) Send(ctx context.Context, contract Contract, method string, args ...any) (*types.Transaction, error) {
	if c.ReadOnly() {
		return nil, ErrSignerNotConfigured
	}

	input, err := contract.ABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s.%s: %w", contract.Name, method, err)
	}

	chainID, err := c.networkID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}

	nonce, err := c.client.PendingNonceAt(ctx, c.sender)
	if err != nil {
		return nil, fmt.Errorf("get pending nonce: %w", err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}

	msg := ethereum.CallMsg{
		From:     c.sender,
		To:       &contract.Address,
		GasPrice: gasPrice,
		Data:     input,
	}
	gas, err := c.client.EstimateGas(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("estimate gas for %s.%s: %w", contract.Name, method, err)
	}

	tx := types.NewTransaction(nonce, contract.Address, big.NewInt(0), gas, gasPrice, input)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), c.key)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	if err := c.client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("send %s.%s: %w", contract.Name, method, err)
	}

	c.logs.Infow("transaction submitted",
		"contract", contract.Name,
		"method", method,
		"tx_hash", signed.Hash().Hex(),
		"nonce", nonce)

	return signed, nil
}

// WaitMined polls for the transaction receipt until it is mined or the
// caller's context expires.
func (c *Client) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	ticker := time.NewTicker(minedBackoff)
	defer ticker.Stop()

	for {
		receipt, err := c.client.TransactionReceipt(ctx, tx.Hash())
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			c.logs.Debugw("receipt not available yet", "tx_hash", tx.Hash().Hex(), "error", err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for transaction %s: %w", tx.Hash().Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

func (c *Client) networkID(ctx context.Context) (*big.Int, error) {
	if c.chainID != nil {
		return c.chainID, nil
	}

	chainID, err := c.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	c.chainID = chainID
	return chainID, nil
}
