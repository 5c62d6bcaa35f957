// Package events fans out informational notifications to in-process listeners.
//
// The validator package publishes password strength analyses here; UI layers
// subscribe to render meters without the analysis affecting field validity.
//
//	bus := events.NewMemoryBroadcaster[validator.StrengthEvent](16)
//	sub := bus.Subscribe(ctx)
//	for msg := range sub.Receive(ctx) {
//	    fmt.Println(msg.ID, msg.Data.Score)
//	}
//
// Delivery never blocks publishers: a subscriber whose buffer is full misses the
// message and is dropped.
package events
