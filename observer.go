package flexgrid

// Observer is the interface for optional integration with the host's event
// system. When set on a Layout, invalidations and completed passes are
// forwarded to it.
type Observer interface {
	LayoutEvent(event LayoutEvent)
}

// LayoutEventType identifies a kind of layout lifecycle event.
type LayoutEventType uint8

const (
	EventInvalidated LayoutEventType = iota // fires when the computed state is discarded
	EventComputed                           // fires when a recomputation pass completes
)

// InvalidationReason records why the computed state was discarded.
type InvalidationReason uint8

const (
	ReasonExplicit     InvalidationReason = iota // Invalidate was called
	ReasonBoundsChange                           // the container width changed
	ReasonEnvironment                            // EnvironmentChanged was called
	ReasonConfig                                 // the configuration or provider was replaced
	ReasonStale                                  // a query found counts newer than the state
)

// String returns the reason's name.
func (r InvalidationReason) String() string {
	switch r {
	case ReasonExplicit:
		return "explicit"
	case ReasonBoundsChange:
		return "bounds"
	case ReasonEnvironment:
		return "environment"
	case ReasonConfig:
		return "config"
	case ReasonStale:
		return "stale"
	default:
		return "unknown"
	}
}

// LayoutEvent carries the details of one lifecycle event. Reason is only
// meaningful for EventInvalidated; the size and count fields only for
// EventComputed.
type LayoutEvent struct {
	Type        LayoutEventType
	Reason      InvalidationReason
	ContentSize Size
	Sections    int
	Items       int
	Headers     int
	Footers     int
}

// SetObserver attaches an observer. Pass nil to detach.
func (l *Layout) SetObserver(o Observer) {
	l.observer = o
}

func (l *Layout) emit(event LayoutEvent) {
	if l.observer != nil {
		l.observer.LayoutEvent(event)
	}
}
