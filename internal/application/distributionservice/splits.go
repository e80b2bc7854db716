package distributionservice

import (
	"github.com/shopspring/decimal"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/pkg/currency"
)

var (
	platformShare       = decimal.RequireFromString("0.1667")
	agentShare          = decimal.RequireFromString("0.0438")
	ownerShareWithAgent = decimal.RequireFromString("0.7895")
	ownerShareAlone     = decimal.RequireFromString("0.8333")
)

// Splits divides a reservation total between its recipients. Each share is
// rounded to the minor unit on its own, so the parts may differ from the
// total by a cent.
func Splits(res *domain.Reservation, platformOwner string) []domain.Split {
	total := res.Price.Total
	share := func(rate decimal.Decimal) decimal.Decimal {
		return total.Mul(rate).Round(currency.SettlementDecimals)
	}

	splits := []domain.Split{{Role: domain.RecipientPlatform, OwnerID: platformOwner, Amount: share(platformShare)}}
	if res.HasAgent() {
		return append(splits,
			domain.Split{Role: domain.RecipientAgent, OwnerID: *res.AgentID, Amount: share(agentShare)},
			domain.Split{Role: domain.RecipientOwner, OwnerID: res.OwnerID, Amount: share(ownerShareWithAgent)},
		)
	}
	return append(splits, domain.Split{Role: domain.RecipientOwner, OwnerID: res.OwnerID, Amount: share(ownerShareAlone)})
}
