package audit

import "log"

type Event struct {
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

// Sink es lo que consumen usecases y handlers; permite sustituir el
// dispatcher real en tests.
type Sink interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

var _ Sink = (*Dispatcher)(nil)

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// cola llena → descartamos el evento (la auditoría nunca
		// debe tumbar la API)
		log.Println("audit queue full, dropping event")
	}
}
