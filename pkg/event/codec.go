package event

import (
	"encoding/json"
	"time"
)

// Codec translates the full event collection to and from the bytes stored
// under the shared collection key. The repository is parameterized over it
// so the wire encoding can change without touching storage logic. A codec
// must round-trip all four event fields exactly.
type Codec interface {
	Encode(events []Event) ([]byte, error)
	Decode(data []byte) ([]Event, error)
}

// JSONCodec stores the collection as a JSON array. Dates keep their full
// RFC 3339 form including offset, so the original calendar day survives
// the round trip regardless of the host timezone.
type JSONCodec struct{}

func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

type storedEvent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *JSONCodec) Encode(events []Event) ([]byte, error) {
	stored := make([]storedEvent, 0, len(events))
	for _, e := range events {
		stored = append(stored, storedEvent{
			ID:        e.ID,
			Name:      e.Name,
			Date:      e.Date,
			CreatedAt: e.CreatedAt,
		})
	}
	return json.Marshal(stored)
}

func (c *JSONCodec) Decode(data []byte) ([]Event, error) {
	var stored []storedEvent
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	events := make([]Event, 0, len(stored))
	for _, s := range stored {
		events = append(events, Event{
			ID:        s.ID,
			Name:      s.Name,
			Date:      s.Date,
			CreatedAt: s.CreatedAt,
		})
	}
	return events, nil
}
