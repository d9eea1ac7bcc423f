package analytics

import (
	"sync"
	"time"

	"qr-menu-api/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	KindView = "view"
	KindScan = "scan"
)

// Event is a view or scan waiting to be persisted
type Event struct {
	Kind         string
	RestaurantID uint
	DishID       *uint
	Device       string
	At           time.Time
}

// Recorder drains analytics events into the store on a background goroutine.
// Enqueueing never blocks the caller; events are dropped (and logged) when the
// buffer is full.
type Recorder struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
	events chan Event
	done   chan struct{}
	stop   sync.Once
}

func NewRecorder(db *gorm.DB, logger *zap.SugaredLogger) *Recorder {
	return &Recorder{
		db:     db,
		logger: logger,
		events: make(chan Event, 256),
		done:   make(chan struct{}),
	}
}

func (r *Recorder) Start() {
	go func() {
		defer close(r.done)
		for ev := range r.events {
			r.persist(ev)
		}
	}()
}

// Stop closes the queue and waits until buffered events are flushed. Safe to
// call more than once.
func (r *Recorder) Stop() {
	r.stop.Do(func() { close(r.events) })
	<-r.done
}

func (r *Recorder) RecordView(restaurantID uint, dishID *uint, device string) {
	r.enqueue(Event{Kind: KindView, RestaurantID: restaurantID, DishID: dishID, Device: device, At: time.Now()})
}

func (r *Recorder) RecordScan(restaurantID uint, device string) {
	r.enqueue(Event{Kind: KindScan, RestaurantID: restaurantID, Device: device, At: time.Now()})
}

func (r *Recorder) enqueue(ev Event) {
	select {
	case r.events <- ev:
	default:
		r.logger.Warnw("analytics buffer full, dropping event", "kind", ev.Kind, "restaurant_id", ev.RestaurantID)
	}
}

func (r *Recorder) persist(ev Event) {
	var err error
	switch ev.Kind {
	case KindView:
		err = r.db.Create(&models.MenuView{
			RestaurantID: ev.RestaurantID,
			DishID:       ev.DishID,
			Device:       ev.Device,
			CreatedAt:    ev.At,
		}).Error
	case KindScan:
		err = r.db.Create(&models.QrScan{
			RestaurantID: ev.RestaurantID,
			Device:       ev.Device,
			CreatedAt:    ev.At,
		}).Error
	}
	if err != nil {
		r.logger.Errorw("failed to record analytics event", "kind", ev.Kind, "restaurant_id", ev.RestaurantID, "error", err)
	}
}
