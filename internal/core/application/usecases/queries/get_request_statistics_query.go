package queries

import (
	"errors"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetRequestStatisticsQueryIsNotConstructed = errors.New(
		"GetRequestStatisticsQuery must be created via NewGetRequestStatisticsQuery constructor",
	)
)

// GetRequestStatisticsQuery counts requests per status. Issued by an
// administrator, or by the process itself for the metrics job.
type GetRequestStatisticsQuery struct {
	actor  identity.Identity
	system bool

	guard guard.ConstructorGuard
}

func NewGetRequestStatisticsQuery(actor identity.Identity) (GetRequestStatisticsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetRequestStatisticsQuery{}, err
	}

	return GetRequestStatisticsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewSystemRequestStatisticsQuery is for in-process callers with no acting identity.
func NewSystemRequestStatisticsQuery() GetRequestStatisticsQuery {
	return GetRequestStatisticsQuery{
		system: true,
		guard:  guard.NewConstructorGuard(),
	}
}

func (q GetRequestStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestStatisticsQueryIsNotConstructed)
}

func (q GetRequestStatisticsQuery) Actor() identity.Identity {
	return q.actor
}

func (q GetRequestStatisticsQuery) IsSystem() bool {
	return q.system
}

// GetRequestStatisticsQueryResponse has an entry for every status, zero included.
type GetRequestStatisticsQueryResponse struct {
	Total    int64
	ByStatus map[shipment.Status]int64
}
