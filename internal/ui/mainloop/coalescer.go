package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks so only the latest one runs.
// A filesystem watcher reports several events for one editor save; they
// collapse into a single reload on the frame goroutine.
type Coalescer struct {
	mu      sync.Mutex
	latest  map[string]func()
	post    func(func())
	stopped bool
}

// NewCoalescer returns a coalescer that schedules through post, usually
// Queue.Post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		latest: make(map[string]func()),
		post:   post,
	}
}

// Post records fn as the latest task for key. Only the first Post of a burst
// schedules a run; later ones replace the function that run will call.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	_, scheduled := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()

	if scheduled {
		return
	}
	c.post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn, ok := c.latest[key]
	delete(c.latest, key)
	stopped := c.stopped
	c.mu.Unlock()

	if ok && !stopped {
		fn()
	}
}

// Pending reports whether a run is scheduled for key.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.latest[key]
	return ok
}

// Stop drops scheduled work and ignores later posts.
func (c *Coalescer) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.latest = map[string]func(){}
	c.mu.Unlock()
}
