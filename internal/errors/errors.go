// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientHoldings = errors.New("insufficient holdings")
	ErrUnknownAsset         = errors.New("unknown asset")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrGameOver             = errors.New("game is over")
	ErrGameNotStarted       = errors.New("game not started")
	ErrEncounterPending     = errors.New("encounter must be resolved first")
	ErrNoEncounterPending   = errors.New("no encounter pending")
	ErrNoOfferPending       = errors.New("no startup offer pending")
	ErrPositionNotFound     = errors.New("position not found")
	ErrNotOwned             = errors.New("asset not owned")
	ErrConfigInvalid        = errors.New("invalid configuration")
	ErrDatabaseError        = errors.New("database error")
)

// ActionError represents a rejected player action. Rejections leave all game
// state untouched apart from the user-facing notice.
type ActionError struct {
	Action string
	Asset  string
	Reason string
	Err    error
}

func (e *ActionError) Error() string {
	if e.Asset != "" {
		return fmt.Sprintf("action rejected [%s] %s: %s", e.Action, e.Asset, e.Reason)
	}
	return fmt.Sprintf("action rejected [%s]: %s", e.Action, e.Reason)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// NewActionError creates a new ActionError.
func NewActionError(action, asset, reason string, err error) *ActionError {
	return &ActionError{
		Action: action,
		Asset:  asset,
		Reason: reason,
		Err:    err,
	}
}

// CatalogError represents invalid or missing reference data.
type CatalogError struct {
	Kind string
	ID   string
	Err  error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog error [%s] %s: %v", e.Kind, e.ID, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a new CatalogError.
func NewCatalogError(kind, id string, err error) *CatalogError {
	return &CatalogError{Kind: kind, ID: id, Err: err}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
