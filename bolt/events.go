package bolt

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/bobinette/paperchain"
)

// EventLog is an append-only record of registry events, keyed by a monotonic
// sequence number. External indexers catch up through List; the registry
// itself never reads events back.
type EventLog struct {
	Driver *Driver
}

func (l *EventLog) Emit(event paperchain.Event) error {
	return l.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(eventBucket)

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("error incrementing sequence: %v", err)
		}

		data, err := json.Marshal(event)
		if err != nil {
			return err
		}

		return bucket.Put(itob(seq), data)
	})
}

// List returns every event emitted so far, in emission order.
func (l *EventLog) List() ([]paperchain.Event, error) {
	var events []paperchain.Event

	err := l.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(eventBucket).Cursor()

		for seq, data := c.First(); seq != nil; seq, data = c.Next() {
			var event paperchain.Event
			if err := json.Unmarshal(data, &event); err != nil {
				return err
			}
			events = append(events, event)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return events, nil
}
