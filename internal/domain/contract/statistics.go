package contract

import "github.com/shopspring/decimal"

// Statistics is the contract dashboard snapshot: counts by lifecycle
// state and the value of work the client has committed to (signed,
// active or completed contracts).
type Statistics struct {
	TotalContracts int
	DraftCount     int
	SentCount      int
	SignedCount    int
	ActiveCount    int
	CompletedCount int
	CancelledCount int

	SignedValue decimal.Decimal
}

// ComputeStatistics folds an owner's contracts into the snapshot. Pure;
// the input slice is not modified.
func ComputeStatistics(contracts []Contract) Statistics {
	stats := Statistics{
		TotalContracts: len(contracts),
		SignedValue:    decimal.Zero,
	}

	for i := range contracts {
		c := &contracts[i]
		switch c.Status {
		case StatusDraft:
			stats.DraftCount++
		case StatusSent:
			stats.SentCount++
		case StatusSigned:
			stats.SignedCount++
		case StatusActive:
			stats.ActiveCount++
		case StatusCompleted:
			stats.CompletedCount++
		case StatusCancelled:
			stats.CancelledCount++
		}

		switch c.Status {
		case StatusSigned, StatusActive, StatusCompleted:
			stats.SignedValue = stats.SignedValue.Add(c.AgreedAmount)
		}
	}

	return stats
}
