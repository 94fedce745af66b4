package journal

import (
	"context"
	"errors"
	"strings"

	"lootgrid/internal/app/ports"
	"lootgrid/internal/domain/expedition"
)

var ErrInvalidRequest = errors.New("invalid journal request")

type Request struct {
	PlayerID     string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

type Response struct {
	Events []expedition.DomainEvent `json:"events"`
}

type UseCase struct {
	Events ports.EventRepository
}

// Execute lists a player's settled explores, newest first.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return Response{}, ErrInvalidRequest
	}
	events, err := u.Events.ListByPlayerID(ctx, req.PlayerID, req.Limit)
	if errors.Is(err, ports.ErrNotFound) {
		// A player who has never settled a walk reads as an empty journal,
		// like the zero stats they get from the status view.
		return Response{Events: []expedition.DomainEvent{}}, nil
	}
	if err != nil {
		return Response{}, err
	}
	return Response{Events: filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)}, nil
}

func filterByTimeWindow(events []expedition.DomainEvent, from, to int64) []expedition.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]expedition.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}
