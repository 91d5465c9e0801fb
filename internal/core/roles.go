package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"proptoken/internal/chain"
	"proptoken/internal/contracts"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var ErrNoGrantPath error = errors.New("no working path to grant ISSUER_ROLE")

// factory methods that might proxy a grant-role call onto a child token,
// tried in order
var factoryGrantMethods = []string{"grantIssuerRole", "grantRoleOnToken"}

// RoleManager acquires the operational ISSUER_ROLE on deployed tokens. The
// deploying admin account is not guaranteed to hold the role after
// deployment, so acquisition is a multi-strategy probe.
type RoleManager struct {
	logs     *zap.SugaredLogger
	chain    ChainGateway
	registry *contracts.Registry
}

func NewRoleManager(logger *zap.SugaredLogger, chainGateway ChainGateway, registry *contracts.Registry) *RoleManager {
	return &RoleManager{
		logs:     logger,
		chain:    chainGateway,
		registry: registry,
	}
}

// EnsureIssuerRole makes sure account holds ISSUER_ROLE on the token,
// trying in order: existing role, factory proxy grants, direct grant as
// token admin, and a last-resort grantRole call. On total failure it logs
// every known DEFAULT_ADMIN_ROLE holder so an operator can remediate.
func (m *RoleManager) EnsureIssuerRole(ctx context.Context, tokenAddress, account common.Address) error {
	token := m.registry.Token(tokenAddress)

	if m.hasRole(ctx, token, contracts.IssuerRole, account) {
		m.logs.Infow("account already holds ISSUER_ROLE", "token", tokenAddress.Hex(), "account", account.Hex())
		return nil
	}

	if err := m.grantViaFactory(ctx, token, account); err == nil {
		return nil
	}

	if m.hasRole(ctx, token, contracts.DefaultAdminRole, account) {
		if err := m.sendGrant(ctx, token, account); err == nil {
			return nil
		} else {
			m.logs.Warnw("direct grant as token admin failed", "token", tokenAddress.Hex(), "error", err)
		}
	}

	// expected to fail under normal access control, but cheap to try
	if err := m.sendGrant(ctx, token, account); err == nil {
		return nil
	}

	holders := m.adminHolders(ctx, token)
	m.logs.Warnw("could not acquire ISSUER_ROLE; an admin must grant it manually",
		"token", tokenAddress.Hex(),
		"account", account.Hex(),
		"default_admin_holders", holders)

	return fmt.Errorf("%w on token %s", ErrNoGrantPath, tokenAddress.Hex())
}

// GrantIssuerRole grants ISSUER_ROLE to an arbitrary account, for the
// operator-facing endpoint.
func (m *RoleManager) GrantIssuerRole(ctx context.Context, tokenAddress, account common.Address) (*types.Transaction, error) {
	token := m.registry.Token(tokenAddress)

	tx, err := m.chain.Send(ctx, token, "grantRole", contracts.IssuerRole, account)
	if err != nil {
		return nil, fmt.Errorf("grant issuer role: %w", err)
	}

	receipt, err := m.chain.WaitMined(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("wait for grant transaction: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("grant transaction %s reverted", tx.Hash().Hex())
	}

	return tx, nil
}

func (m *RoleManager) grantViaFactory(ctx context.Context, token chain.Contract, account common.Address) error {
	factory, ok := m.registry.Factory()
	if !ok {
		return errors.New("factory not configured")
	}

	if !m.hasRole(ctx, token, contracts.DefaultAdminRole, factory.Address) {
		return errors.New("factory does not hold DEFAULT_ADMIN_ROLE on token")
	}

	var lastErr error
	for _, method := range factoryGrantMethods {
		var args []any
		switch method {
		case "grantIssuerRole":
			args = []any{token.Address, account}
		case "grantRoleOnToken":
			args = []any{token.Address, contracts.IssuerRole, account}
		}

		tx, err := m.chain.Send(ctx, factory, method, args...)
		if err != nil {
			m.logs.Debugw("factory grant method failed", "method", method, "error", err)
			lastErr = err
			continue
		}

		receipt, err := m.chain.WaitMined(ctx, tx)
		if err != nil {
			lastErr = err
			continue
		}
		if receipt.Status != types.ReceiptStatusSuccessful {
			lastErr = fmt.Errorf("factory %s transaction reverted", method)
			continue
		}

		if m.hasRole(ctx, token, contracts.IssuerRole, account) {
			m.logs.Infow("ISSUER_ROLE granted via factory", "method", method, "token", token.Address.Hex())
			return nil
		}
		lastErr = fmt.Errorf("factory %s succeeded but role still missing", method)
	}

	if lastErr == nil {
		lastErr = errors.New("no factory grant method available")
	}
	return lastErr
}

func (m *RoleManager) sendGrant(ctx context.Context, token chain.Contract, account common.Address) error {
	tx, err := m.chain.Send(ctx, token, "grantRole", contracts.IssuerRole, account)
	if err != nil {
		return err
	}

	receipt, err := m.chain.WaitMined(ctx, tx)
	if err != nil {
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("grantRole transaction %s reverted", tx.Hash().Hex())
	}

	m.logs.Infow("ISSUER_ROLE granted", "token", token.Address.Hex(), "account", account.Hex())
	return nil
}

func (m *RoleManager) hasRole(ctx context.Context, token chain.Contract, role [32]byte, account common.Address) bool {
	results, err := m.chain.Call(ctx, token, "hasRole", role, account)
	if err != nil {
		m.logs.Debugw("hasRole check failed", "token", token.Address.Hex(), "error", err)
		return false
	}
	has, ok := results[0].(bool)
	return ok && has
}

// adminHolders enumerates DEFAULT_ADMIN_ROLE holders when the token supports
// role enumeration, falling back to probing the factory address alone.
func (m *RoleManager) adminHolders(ctx context.Context, token chain.Contract) []string {
	results, err := m.chain.Call(ctx, token, "getRoleMemberCount", contracts.DefaultAdminRole)
	if err == nil {
		count, ok := results[0].(*big.Int)
		if ok {
			holders := make([]string, 0, count.Int64())
			for i := int64(0); i < count.Int64(); i++ {
				memberRes, err := m.chain.Call(ctx, token, "getRoleMember", contracts.DefaultAdminRole, big.NewInt(i))
				if err != nil {
					continue
				}
				if addr, ok := memberRes[0].(common.Address); ok {
					holders = append(holders, addr.Hex())
				}
			}
			return holders
		}
	}

	// enumeration unsupported, probe the one candidate we know about
	if factory, ok := m.registry.Factory(); ok {
		if m.hasRole(ctx, token, contracts.DefaultAdminRole, factory.Address) {
			return []string{factory.Address.Hex()}
		}
	}
	return nil
}
