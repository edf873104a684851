package asset

import (
	"github.com/onionoriginals/originals/events"
	"github.com/onionoriginals/originals/resource"
)

func eventResourceVersionCreated(r resource.Resource) events.Event {
	return events.Event{Name: "resource:version:created", Data: r}
}
