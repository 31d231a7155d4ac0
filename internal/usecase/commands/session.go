package commands

import (
	"context"
	"errors"
	"time"

	"delivery-admin/internal/domain/activesession"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/pkg/clock"
	"delivery-admin/internal/pkg/errs"
	"delivery-admin/internal/pkg/jwt"
	"delivery-admin/internal/usecase/queries"
	"delivery-admin/internal/usecase/shared"
)

var ErrInvalidSessionToken = errs.New("invalid session token")

type SessionCommands interface {
	// Login opens a session for the customer. It fails with
	// activesession.ErrAlreadyActive while another session is still live.
	Login(ctx context.Context, customerID int64) (*queries.SessionResult, error)
	// Validate confirms the session is live. An expired session is closed
	// and reported as ErrSessionNotFound.
	Validate(ctx context.Context, sessionID int64) (*queries.SessionResult, error)
	// Authenticate resolves a bearer token to its live session.
	Authenticate(ctx context.Context, token string) (*queries.SessionResult, error)
	Logout(ctx context.Context, sessionID int64) error
}

type sessionUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	tokens   *jwt.Service
	lifetime time.Duration
}

func NewSessionCommands(uow shared.UnitOfWork, clk clock.Clock, tokens *jwt.Service, lifetime time.Duration) SessionCommands {
	if lifetime <= 0 {
		lifetime = activesession.DefaultDuration
	}
	return &sessionUseCaseImpl{uow: uow, clock: clk, tokens: tokens, lifetime: lifetime}
}

func (uc *sessionUseCaseImpl) Login(ctx context.Context, customerID int64) (*queries.SessionResult, error) {
	var result *queries.SessionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		cust, err := tx.Reads().CustomerByID(ctx, customerID)
		if err != nil {
			return lookupErr(err, ErrCustomerNotFound)
		}
		if err := tx.Sessions().CloseExpired(ctx, customerID, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		open, err := tx.Sessions().FindOpenForUpdate(ctx, customerID)
		switch {
		case err == nil && open.IsActive(now):
			return activesession.ErrAlreadyActive
		case err != nil && !infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		s, err := activesession.Start(customerID, now, uc.lifetime)
		if err != nil {
			return err
		}
		id, err := tx.Sessions().Create(ctx, s)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, activesession.ErrAlreadyActive)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		s = activesession.Reconstruct(id, s.CustomerID(), s.StartedAt(), s.ExpiresAt(), nil)

		token, err := uc.tokens.GenerateToken(id, cust.ID, cust.Type, s.StartedAt(), s.ExpiresAt())
		if err != nil {
			return errs.Wrap(err, "failed to sign session token")
		}
		result = sessionResult(s, cust, now)
		result.Token = token
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *sessionUseCaseImpl) Validate(ctx context.Context, sessionID int64) (*queries.SessionResult, error) {
	var (
		result  *queries.SessionResult
		expired bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		s, err := tx.Sessions().FindByID(ctx, sessionID)
		if err != nil {
			return lookupErr(err, ErrSessionNotFound)
		}
		if !s.IsActive(now) {
			// The close must commit, so the miss is reported after the transaction.
			expired = true
			if s.CloseIfExpired(now) {
				if err := tx.Sessions().SaveEnd(ctx, s); err != nil {
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
			}
			return nil
		}
		cust, err := tx.Reads().CustomerByID(ctx, s.CustomerID())
		if err != nil {
			return lookupErr(err, ErrCustomerNotFound)
		}
		result = sessionResult(s, cust, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, ErrSessionNotFound
	}
	return result, nil
}

func (uc *sessionUseCaseImpl) Authenticate(ctx context.Context, token string) (*queries.SessionResult, error) {
	claims, err := uc.tokens.ValidateToken(token)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSessionToken)
	}
	result, err := uc.Validate(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if result.Customer.ID != claims.CustomerID {
		return nil, ErrInvalidSessionToken
	}
	return result, nil
}

func (uc *sessionUseCaseImpl) Logout(ctx context.Context, sessionID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Sessions().FindByID(ctx, sessionID)
		if err != nil {
			return lookupErr(err, ErrSessionNotFound)
		}
		if !s.End(uc.clock.Now()) {
			return nil
		}
		if err := tx.Sessions().SaveEnd(ctx, s); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func sessionResult(s *activesession.Session, cust *shared.CustomerSnapshot, now time.Time) *queries.SessionResult {
	return &queries.SessionResult{
		Session: queries.SessionView{
			ID:         s.ID(),
			CustomerID: s.CustomerID(),
			StartedAt:  s.StartedAt(),
			ExpiresAt:  s.ExpiresAt(),
			EndedAt:    s.EndedAt(),
			Active:     s.IsActive(now),
		},
		Customer: queries.SessionCustomer{
			ID:       cust.ID,
			FullName: cust.FullName,
			Email:    cust.Email,
			Type:     cust.Type,
		},
	}
}

// IsSessionRejection reports errors that mean the caller holds no usable
// session.
func IsSessionRejection(err error) bool {
	return errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrInvalidSessionToken)
}
