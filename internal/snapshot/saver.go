package snapshot

import (
	"time"

	"github.com/RJD02/life-quest/internal/board"
	"github.com/rs/zerolog"
)

// DefaultSaveDelay is how long the saver waits after a change before writing,
// so bursts of mutations collapse into a single snapshot.
const DefaultSaveDelay = 2 * time.Second

// Saver debounces save requests and writes at most one snapshot at a time.
// A request arriving while a write is pending is coalesced into it. Write
// failures are logged and the board keeps operating in memory.
type Saver struct {
	store  *Store
	export func() board.State
	delay  time.Duration
	log    zerolog.Logger

	requests chan struct{}
	quit     chan struct{}
	done     chan struct{}
}

// NewSaver starts the background save loop. export is called at write time so
// the snapshot always reflects the latest state, not the state at request
// time.
func NewSaver(store *Store, export func() board.State, delay time.Duration, logger zerolog.Logger) *Saver {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	s := &Saver{
		store:    store,
		export:   export,
		delay:    delay,
		log:      logger,
		requests: make(chan struct{}, 1),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.loop()
	return s
}

// Request schedules a snapshot save. Safe to call from any goroutine; never
// blocks.
func (s *Saver) Request() {
	select {
	case s.requests <- struct{}{}:
	default:
	}
}

func (s *Saver) loop() {
	defer close(s.done)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-s.requests:
			if timer == nil {
				timer = time.NewTimer(s.delay)
				fire = timer.C
			}
		case <-fire:
			timer = nil
			fire = nil
			s.save()
		case <-s.quit:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (s *Saver) save() {
	if err := s.store.Save(s.export()); err != nil {
		s.log.Error().Err(err).Msg("snapshot save failed, continuing in memory")
	}
}

// Close stops the loop and performs a final synchronous save so shutdown
// never loses the tail of the session.
func (s *Saver) Close() {
	close(s.quit)
	<-s.done
	s.save()
}
