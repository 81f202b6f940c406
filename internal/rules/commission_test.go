package rules

import (
	"testing"

	"estate-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeShares_SameAgent(t *testing.T) {
	capturing, selling := ComputeShares(7, 7)
	assert.Equal(t, CaptureAndSellShare, capturing)
	assert.Equal(t, CaptureAndSellShare, selling)
	assert.Equal(t, capturing, selling)
}

func TestComputeShares_DifferentAgents(t *testing.T) {
	capturing, selling := ComputeShares(7, 8)
	assert.Equal(t, CaptureOnlyShare, capturing)
	assert.Equal(t, SellOnlyShare, selling)
	assert.NotEqual(t, capturing, selling)
}

func TestAgentAmount_SpecExample(t *testing.T) {
	// 100,000 sale, 5% total rate, 40/60 split
	assert.InDelta(t, 2000.0, AgentAmount(100000, 40, 5), 0.001)
	assert.InDelta(t, 3000.0, AgentAmount(100000, 60, 5), 0.001)
}

func TestAmountFor(t *testing.T) {
	capturing, selling := ComputeShares(7, 8)
	c := &models.Commission{
		SalePrice:        100000,
		TotalRate:        5,
		CapturingAgentID: 7,
		SellingAgentID:   8,
		CapturingShare:   capturing,
		SellingShare:     selling,
	}

	assert.InDelta(t, 2000.0, AmountFor(c, 7), 0.001)
	assert.InDelta(t, 3000.0, AmountFor(c, 8), 0.001)
	assert.Zero(t, AmountFor(c, 99))
}

func TestAmountFor_SameAgentKeepsFullRate(t *testing.T) {
	capturing, selling := ComputeShares(7, 7)
	c := &models.Commission{
		SalePrice:        200000,
		TotalRate:        5,
		CapturingAgentID: 7,
		SellingAgentID:   7,
		CapturingShare:   capturing,
		SellingShare:     selling,
	}

	// Full 5% of the sale, counted once
	assert.InDelta(t, 10000.0, AmountFor(c, 7), 0.001)
	assert.Zero(t, AmountFor(c, 8))
}
