package charts

import "sync"

// Chart slot names. One live handle may exist per slot at any time.
const (
	SlotUserGrowth       = "user-growth"
	SlotModeDistribution = "mode-distribution"
	SlotModeTime         = "mode-time"
	SlotPlatform         = "platform"
	SlotTimeUsage        = "time-usage"
	SlotActivity         = "activity"
	SlotContentType      = "content-type"
)

// Handle is a live chart bound to a slot. Released handles must not be
// served again.
type Handle struct {
	Slot   string
	Config *Config

	mu       sync.Mutex
	released bool
}

// Release marks the handle dead. Idempotent.
func (h *Handle) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.released = true
}

func (h *Handle) Released() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.released
}

// Registry owns the slot→handle mapping. Rebuilding a slot releases the
// prior handle before the replacement is stored.
type Registry struct {
	mu    sync.Mutex
	slots map[string]*Handle
}

func NewRegistry() *Registry {
	return &Registry{slots: make(map[string]*Handle)}
}

func (r *Registry) Replace(slot string, cfg *Config) *Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.slots[slot]; ok {
		prev.Release()
	}
	h := &Handle{Slot: slot, Config: cfg}
	r.slots[slot] = h
	return h
}

func (r *Registry) Get(slot string) (*Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.slots[slot]
	return h, ok
}

// LiveSlots reports the number of stored handles, feeding the chart-slots
// gauge.
func (r *Registry) LiveSlots() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}
