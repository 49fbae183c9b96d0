// internal/event/types.go
package event

const (
	OrderIssued   EventType = "OrderIssued"   // destination reserved, order created
	OrderSkipped  EventType = "OrderSkipped"  // no free cell within the search radius
	Departed      EventType = "Departed"      // first transit step of an order
	Blocked       EventType = "Blocked"       // shape cast hit something
	Unblocked     EventType = "Unblocked"     // path clear again
	Arrived       EventType = "Arrived"       // move committed to the ledger
	OrderCanceled EventType = "OrderCanceled" // stopped by command or retry budget
)

// Cancellation reasons.
const (
	ReasonStopped   = "stopped"
	ReasonBlocked   = "blocked"
	ReasonExhausted = "no free cell"
)
