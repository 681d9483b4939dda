package scene

// EventKind classifies scene notifications surfaced to the UI layer.
// They are presentation-only side effects, not part of the core contract.
type EventKind int

const (
	// EventSceneReady fires after a rebuild completes and the new land and
	// crop batches are live.
	EventSceneReady EventKind = iota
	// EventViewChanged fires when the camera preset switches.
	EventViewChanged
	// EventGrowthComplete fires once per batch when it reaches idle sway.
	EventGrowthComplete
)

// Event is a scene transition notification.
type Event struct {
	Kind    EventKind
	Message string
}
