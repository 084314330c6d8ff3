package domain

import "errors"

var (
	// Ledger errors
	ErrEntryNotFound    = errors.New("ledger entry not found")
	ErrUnknownLedger    = errors.New("unknown ledger")
	ErrInvalidDirection = errors.New("direction must be entrada or saida")

	// Record errors
	ErrPayableNotFound    = errors.New("payable not found")
	ErrReceivableNotFound = errors.New("receivable not found")
	ErrSaleNotFound       = errors.New("sale not found")
	ErrPurchaseNotFound   = errors.New("purchase not found")
)
