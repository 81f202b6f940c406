package rules

import "estate-backend/internal/models"

// Role-based shares, each a percentage of the total commission rate. The
// three constants cover the three role configurations and deliberately do not
// sum to 100: an agent who both captured and sold keeps the whole rate, while
// a split sale pays 40 to the capturing agent and 60 to the selling agent.
const (
	CaptureAndSellShare = 100.0
	CaptureOnlyShare    = 40.0
	SellOnlyShare       = 60.0
)

// ComputeShares returns the capturing and selling share percentages for the
// given agent pair. Agent ids are not validated here; that is the caller's
// responsibility.
func ComputeShares(capturingAgentID, sellingAgentID int) (capturingShare, sellingShare float64) {
	if capturingAgentID == sellingAgentID {
		return CaptureAndSellShare, CaptureAndSellShare
	}
	return CaptureOnlyShare, SellOnlyShare
}

// AgentAmount converts a share into money:
//
//	salePrice * share% * totalRate% = salePrice * share * rate / 100 / 100
//
// e.g. a 100,000 sale at a 5% total rate with a 40% share pays 2,000.
func AgentAmount(salePrice, sharePercent, totalRatePercent float64) float64 {
	return salePrice * sharePercent / 100 * totalRatePercent / 100
}

// AmountFor returns the amount a specific agent earns from a commission, or 0
// when the agent played no role in it. When the same agent captured and sold,
// the two shares are equal and a single full-share amount is returned.
func AmountFor(c *models.Commission, agentID int) float64 {
	if c.CapturingAgentID == c.SellingAgentID {
		if agentID == c.CapturingAgentID {
			return AgentAmount(c.SalePrice, c.CapturingShare, c.TotalRate)
		}
		return 0
	}

	var total float64
	if agentID == c.CapturingAgentID {
		total += AgentAmount(c.SalePrice, c.CapturingShare, c.TotalRate)
	}
	if agentID == c.SellingAgentID {
		total += AgentAmount(c.SalePrice, c.SellingShare, c.TotalRate)
	}
	return total
}
