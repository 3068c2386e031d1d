package calendar

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
)

// slotEntry pairs the immutable slot identity with its mutable state.
// Availability lives in an atomic flag so claims race without a lock;
// generation counts every successful flip for auditing.
type slotEntry struct {
	slot       domain.TimeSlot // identity fields only; Available is derived
	available  atomic.Bool
	generation atomic.Uint64
}

func (e *slotEntry) snapshot() domain.TimeSlot {
	s := e.slot
	s.Available = e.available.Load()
	return s
}

// Calendar is the in-memory slot arena, keyed by (serviceID, date, time).
// The index maps are guarded by an RWMutex; the availability flag of each
// slot is atomic, so Reserve and Release never hold the lock while racing.
type Calendar struct {
	mu    sync.RWMutex
	slots map[string]*slotEntry
	byDay map[string][]string // (serviceID, date) -> slot ids, insertion order
}

// New creates an empty calendar.
func New() *Calendar {
	return &Calendar{
		slots: make(map[string]*slotEntry),
		byDay: make(map[string][]string),
	}
}

// Put seeds one slot. The slot id defaults to the canonical
// (serviceID, date, time) key when empty. Duplicate ids are rejected:
// identity fields must never change after creation.
func (c *Calendar) Put(slot domain.TimeSlot) error {
	if slot.ID == "" {
		slot.ID = domain.SlotID(slot.ServiceID, slot.Date, slot.StartTime)
	}
	if err := slot.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	entry := &slotEntry{slot: slot}
	entry.available.Store(slot.Available)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.slots[slot.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSlot, slot.ID)
	}

	day := dayKey(slot.ServiceID, slot.Date)
	c.slots[slot.ID] = entry
	c.byDay[day] = append(c.byDay[day], slot.ID)
	return nil
}

// Get returns a point-in-time snapshot of one slot.
func (c *Calendar) Get(slotID string) (domain.TimeSlot, error) {
	c.mu.RLock()
	entry, ok := c.slots[slotID]
	c.mu.RUnlock()

	if !ok {
		return domain.TimeSlot{}, fmt.Errorf("%w: %s", ErrUnknownSlot, slotID)
	}
	return entry.snapshot(), nil
}

// ListAvailable returns the currently available slots of a service on a
// date, ordered by start time. The result is a finite snapshot: a fresh
// call reflects the availability at that moment, it is not a live stream.
func (c *Calendar) ListAvailable(serviceID string, date time.Time) []domain.TimeSlot {
	c.mu.RLock()
	ids := c.byDay[dayKey(serviceID, date)]
	entries := make([]*slotEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, c.slots[id])
	}
	c.mu.RUnlock()

	slots := make([]domain.TimeSlot, 0, len(entries))
	for _, entry := range entries {
		if entry.available.Load() {
			slots = append(slots, entry.snapshot())
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})
	return slots
}

// Reserve atomically claims a slot. The compare-and-swap guarantees
// at-most-one-winner under concurrent callers: exactly one claim flips the
// flag, every other caller gets ErrSlotUnavailable. An id the calendar has
// never seen returns ErrUnknownSlot instead, so callers distinguish a
// missing slot from a lost race.
func (c *Calendar) Reserve(slotID string) (domain.TimeSlot, error) {
	c.mu.RLock()
	entry, ok := c.slots[slotID]
	c.mu.RUnlock()

	if !ok {
		return domain.TimeSlot{}, fmt.Errorf("%w: %s", ErrUnknownSlot, slotID)
	}
	if !entry.available.CompareAndSwap(true, false) {
		return domain.TimeSlot{}, fmt.Errorf("%w: %s", ErrSlotUnavailable, slotID)
	}
	entry.generation.Add(1)
	return entry.snapshot(), nil
}

// Release returns a claimed slot to the pool. Releasing an already
// available slot is a no-op; only unknown ids fail.
func (c *Calendar) Release(slotID string) error {
	c.mu.RLock()
	entry, ok := c.slots[slotID]
	c.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, slotID)
	}
	if entry.available.CompareAndSwap(false, true) {
		entry.generation.Add(1)
	}
	return nil
}

// Generation returns how many times the slot's availability has flipped.
// Exposed for optimistic-concurrency auditing.
func (c *Calendar) Generation(slotID string) (uint64, error) {
	c.mu.RLock()
	entry, ok := c.slots[slotID]
	c.mu.RUnlock()

	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSlot, slotID)
	}
	return entry.generation.Load(), nil
}

func dayKey(serviceID string, date time.Time) string {
	return serviceID + "/" + date.Format(domain.DateFormat)
}
