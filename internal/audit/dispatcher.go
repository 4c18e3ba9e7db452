package audit

import "log"

// Acciones registradas por el panel y el motor de reservas.
const (
	ActionBookingCreated   = "booking_created"
	ActionBookingConfirmed = "booking_confirmed"
	ActionBookingCancelled = "booking_cancelled"
	ActionBonoMinted       = "bono_minted"
	ActionSnapshotReplaced = "snapshot_replaced"
	ActionAdminLogin       = "admin_login"
)

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

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
		if d.logger == nil {
			continue
		}
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
		// cola llena → descartamos audit (nunca romper la API)
		log.Println("audit queue full, dropping event")
	}
}
