package physics

import (
	"fmt"
	"runtime"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Processor selects how World.Step dispatches the per-body update.
type Processor uint8

const (
	// ProcessorCPU updates bodies one after another on the caller's goroutine.
	ProcessorCPU Processor = iota
	// ProcessorParallel fans the update out over goroutines, one per body, bounded by Workers.
	ProcessorParallel
	// ProcessorGPU is reserved. NewWorld rejects it with ErrUnsupportedProcessor.
	ProcessorGPU
)

func (p Processor) String() string {
	switch p {
	case ProcessorCPU:
		return "cpu"
	case ProcessorParallel:
		return "parallel"
	case ProcessorGPU:
		return "gpu"
	}
	return fmt.Sprintf("processor(%d)", uint8(p))
}

// ParseProcessor maps cpu, parallel (or mixed) and gpu to a Processor.
func ParseProcessor(name string) (Processor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cpu", "":
		return ProcessorCPU, nil
	case "parallel", "mixed":
		return ProcessorParallel, nil
	case "gpu":
		return ProcessorGPU, nil
	}
	return ProcessorCPU, fmt.Errorf("unknown processor %q", name)
}

// Logger receives one line per notable world event.
type Logger interface {
	Log(line string)
}

type discardLogger struct{}

func (discardLogger) Log(string) {}

// WorldConfig is fixed at construction.
type WorldConfig struct {
	Processor Processor
	// Workers bounds ProcessorParallel; 0 means GOMAXPROCS.
	Workers int
	Logger  Logger
}

// World holds a set of bodies and steps them together. Step, Resolve and changes to the body
// set are serialized, so a collision never overlaps the integration of either body.
type World struct {
	mu        sync.Mutex
	bodies    []*Body
	processor Processor
	workers   int
	log       Logger
	elapsed   float64
}

// NewWorld returns an empty world using cfg's processor.
func NewWorld(cfg WorldConfig) (*World, error) {
	switch cfg.Processor {
	case ProcessorCPU, ProcessorParallel:
	default:
		return nil, fmt.Errorf("processor %s: %w", cfg.Processor, ErrUnsupportedProcessor)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := cfg.Logger
	if log == nil {
		log = discardLogger{}
	}
	return &World{processor: cfg.Processor, workers: workers, log: log}, nil
}

// Processor returns the dispatch mode chosen at construction.
func (w *World) Processor() Processor {
	return w.processor
}

// AddBody appends a body. Order is preserved.
func (w *World) AddBody(b *Body) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bodies = append(w.bodies, b)
}

// RemoveBody removes b and reports whether it was present.
func (w *World) RemoveBody(b *Body) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := slices.Index(w.bodies, b)
	if i < 0 {
		return false
	}
	w.bodies = slices.Delete(w.bodies, i, i+1)
	return true
}

// Clear removes every body.
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bodies = nil
}

// Len returns the number of bodies.
func (w *World) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.bodies)
}

// Bodies returns a copy of the body list. The bodies themselves are shared.
func (w *World) Bodies() []*Body {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.bodies)
}

// Body returns the first body with the given name.
func (w *World) Body(name string) (*Body, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, b := range w.bodies {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownBody)
}

// Elapsed returns the total simulated time stepped through this world.
func (w *World) Elapsed() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.elapsed
}

// Step simulates every body by timeStep. A failing body does not stop the others; the first
// error is returned wrapped with the body's name.
func (w *World) Step(timeStep float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	if w.processor == ProcessorParallel {
		err = w.stepParallel(timeStep)
	} else {
		err = w.stepSerial(timeStep)
	}
	w.elapsed += timeStep
	return err
}

func (w *World) stepSerial(timeStep float64) error {
	var first error
	for _, b := range w.bodies {
		if err := b.Simulate(timeStep); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (w *World) stepParallel(timeStep float64) error {
	var g errgroup.Group
	g.SetLimit(w.workers)
	for _, b := range w.bodies {
		b := b
		g.Go(func() error {
			return b.Simulate(timeStep)
		})
	}
	return g.Wait()
}

// Resolve applies a collision between a and b. Placeholder modes are logged since they
// leave velocities unchanged.
func (w *World) Resolve(a, b *Body, mode CollisionMode) (CollisionInfo, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if mode.Placeholder() {
		w.log.Log(fmt.Sprintf("collision %s between %q and %q: mode is a placeholder, velocities unchanged",
			mode, nameOf(a), nameOf(b)))
	}
	info, err := Resolve(a, b, mode)
	if err != nil {
		return info, err
	}
	if mode == CollisionStick {
		w.log.Log(fmt.Sprintf("collision stick between %q and %q: shared velocity %v", a.Name, b.Name, a.Velocity))
	}
	return info, nil
}

// Snapshots returns the state of every body in order.
func (w *World) Snapshots() []BodyState {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]BodyState, 0, len(w.bodies))
	for _, b := range w.bodies {
		out = append(out, b.Snapshot())
	}
	return out
}

func nameOf(b *Body) string {
	if b == nil {
		return "<nil>"
	}
	return b.Name
}
