package contract

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statContract(t *testing.T, n int, status ContractStatus, amount int64) Contract {
	t.Helper()
	c, err := NewContract("owner-1", FormatContractNumber(2026, n), "Client", "Project",
		decimal.NewFromInt(amount), decimal.NewFromInt(30))
	require.NoError(t, err)
	c.Status = status
	return *c
}

func TestComputeStatistics(t *testing.T) {
	contracts := []Contract{
		statContract(t, 1, StatusDraft, 1000),
		statContract(t, 2, StatusSent, 2000),
		statContract(t, 3, StatusSigned, 3000),
		statContract(t, 4, StatusActive, 4000),
		statContract(t, 5, StatusCompleted, 5000),
		statContract(t, 6, StatusCancelled, 6000),
	}

	stats := ComputeStatistics(contracts)

	assert.Equal(t, 6, stats.TotalContracts)
	assert.Equal(t, 1, stats.DraftCount)
	assert.Equal(t, 1, stats.SentCount)
	assert.Equal(t, 1, stats.SignedCount)
	assert.Equal(t, 1, stats.ActiveCount)
	assert.Equal(t, 1, stats.CompletedCount)
	assert.Equal(t, 1, stats.CancelledCount)

	// Only signed, active and completed contracts count as committed
	assert.Equal(t, "12000", stats.SignedValue.String(),
		fmt.Sprintf("got %s", stats.SignedValue))
}

func TestComputeStatistics_Empty(t *testing.T) {
	stats := ComputeStatistics(nil)
	assert.Equal(t, 0, stats.TotalContracts)
	assert.True(t, stats.SignedValue.IsZero())
}
