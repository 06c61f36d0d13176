package shell

import (
	"os"
	"sync"
)

// registry tracks spawned-but-unreaped background children so the exit
// builtin can terminate them without relying on POSIX process-group
// semantics. Foreground children never enter the registry; they are reaped
// synchronously by the launcher's wait.
type registry struct {
	mu       sync.Mutex
	children map[int]Child
}

func newRegistry() *registry {
	return &registry{children: make(map[int]Child)}
}

func (r *registry) add(c Child) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.children[c.PID()] = c
}

func (r *registry) remove(pid int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.children, pid)
}

func (r *registry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.children)
}

// terminateAll delivers sig to every tracked child. Children that already
// exited are ignored; the reaper removes them once their completion is
// observed.
func (r *registry) terminateAll(sig os.Signal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.children {
		_ = c.Signal(sig)
	}
}
