package audit

import (
	"sync"

	"github.com/rs/zerolog/log"
)

type Dispatcher struct {
	sink  Sink
	queue chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		entry, err := ToLog(ev)
		if err != nil {
			log.Warn().Err(err).Msg("audit event dropped")
			continue
		}

		if err := d.sink.Write(entry); err != nil {
			log.Error().Err(err).Str("action", entry.Action).Msg("audit write failed")
		}
	}
}

// Dispatch nunca bloqueia: com a fila cheia, ou depois de Close, o
// evento é descartado.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		log.Warn().Str("action", string(ev.Kind())).Msg("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		log.Warn().Str("action", string(ev.Kind())).Msg("audit queue full, dropping event")
	}
}

// Close drena a fila e espera o worker terminar. Pode ser chamado
// mais de uma vez.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
