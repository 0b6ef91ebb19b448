package models

import "errors"

var (
	ErrInvalidPartnerName = errors.New("invalid partner name")
	ErrInvalidPartnerID   = errors.New("invalid partner ID")

	ErrInvalidBookmakerName = errors.New("invalid bookmaker name")
	ErrInvalidBookmakerID   = errors.New("invalid bookmaker ID")
	ErrInvalidCurrencyCode  = errors.New("invalid currency code")
	ErrNegativeBalance      = errors.New("balance cannot be negative")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrBookmakerInactive    = errors.New("bookmaker account is inactive")

	ErrInvalidOdd              = errors.New("invalid odd")
	ErrInvalidStake            = errors.New("invalid stake")
	ErrInvalidLegResult        = errors.New("invalid leg result")
	ErrLegAlreadySettled       = errors.New("leg is already settled")
	ErrLegNotSettled           = errors.New("leg is not settled")
	ErrInvalidReferenceIndex   = errors.New("reference leg index out of range")
	ErrInvalidTicketID         = errors.New("invalid ticket ID")
	ErrTicketAlreadyConfirmed  = errors.New("ticket is already confirmed")
	ErrTicketNotFound          = errors.New("ticket not found")
	ErrInsufficientLegBalance  = errors.New("one or more legs exceed bookmaker balance")
	ErrInvalidRoundingStep     = errors.New("invalid rounding increment")
	ErrInvalidMinimumStake     = errors.New("invalid minimum stake")
	ErrInvalidMaxLegs          = errors.New("invalid maximum leg count")
	ErrInvalidDominantCurrency = errors.New("invalid dominant currency")

	ErrRateUnavailable    = errors.New("exchange rate unavailable for currency")
	ErrInvalidRate        = errors.New("invalid exchange rate")
	ErrInvalidRateTTL     = errors.New("invalid rate cache TTL")
	ErrStaleRateSnapshot  = errors.New("exchange rate snapshot is stale")
	ErrInvalidRateBackend = errors.New("invalid rate cache backend")

	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")

	ErrRecordNotFound = errors.New("record not found")
)
