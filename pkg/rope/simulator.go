package rope

import (
	"fmt"

	"go.uber.org/zap"
)

// Simulator drives a Chain with a stream of commands and tracks every cell the
// tail visits. A Simulator is not safe for concurrent use.
type Simulator struct {
	chain   *Chain
	visited *Visited

	naive    bool
	checked  bool
	capacity int
	log      *zap.Logger

	steps      int
	earlyExits int
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithNaive disables the early exit: every follower is recomputed and the tail
// is recorded after every elementary step.
func WithNaive() Option { return func(s *Simulator) { s.naive = true } }

// WithCheckedInvariant verifies the adjacency invariant after every step.
func WithCheckedInvariant() Option { return func(s *Simulator) { s.checked = true } }

// WithVisitedCapacity overrides the initial size hint of the visited set.
func WithVisitedCapacity(n int) Option { return func(s *Simulator) { s.capacity = n } }

// WithLogger attaches a logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns a Simulator for a chain of n knots.
func New(n int, opts ...Option) (*Simulator, error) {
	chain, err := NewChain(n)
	if err != nil {
		return nil, err
	}
	s := &Simulator{
		chain:    chain,
		capacity: DefaultVisitedCapacity,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.visited = NewVisited(s.capacity)
	return s, nil
}

// Chain exposes the simulated chain for inspection.
func (s *Simulator) Chain() *Chain { return s.chain }

// Visited exposes the set of recorded tail cells.
func (s *Simulator) Visited() *Visited { return s.visited }

// Steps returns the number of elementary steps executed so far.
func (s *Simulator) Steps() int { return s.steps }

// EarlyExits returns how many steps stopped propagating before the tail.
func (s *Simulator) EarlyExits() int { return s.earlyExits }

// Reset puts every knot back on the origin and forgets all visited cells.
func (s *Simulator) Reset() {
	s.chain.reset()
	s.visited = NewVisited(s.capacity)
	s.steps = 0
	s.earlyExits = 0
}

// Step moves the head one cell in d and pulls the followers. It reports whether
// the tail position was recorded. d must be valid; Apply checks this.
func (s *Simulator) Step(d Direction) bool {
	s.steps++
	s.chain.moveHead(d)
	if s.naive {
		s.chain.propagateAll()
		s.visited.Insert(s.chain.Tail())
		return true
	}
	if !s.chain.propagate() {
		s.earlyExits++
		return false
	}
	s.visited.Insert(s.chain.Tail())
	return true
}

// Apply runs every elementary step of cmd. A zero count does nothing.
func (s *Simulator) Apply(cmd Command) error {
	if cmd.Count < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeCount, cmd)
	}
	if !cmd.Dir.Valid() {
		return fmt.Errorf("%w: %s", ErrBadDirection, cmd.Dir)
	}
	for range cmd.Count {
		s.Step(cmd.Dir)
		if s.checked {
			if i, ok := s.chain.Valid(); !ok {
				return fmt.Errorf("%w: knot %d at %s, predecessor at %s after step %d",
					ErrInvariant, i, s.chain.Knot(i), s.chain.Knot(i-1), s.steps)
			}
		}
	}
	s.log.Debug("applied command",
		zap.Stringer("command", cmd),
		zap.Stringer("head", s.chain.Head()),
		zap.Stringer("tail", s.chain.Tail()),
		zap.Int("visited", s.visited.Len()))
	return nil
}

// Run applies cmds in order and returns the number of distinct tail cells.
// Processing stops at the first failing command.
func (s *Simulator) Run(cmds []Command) (int, error) {
	for i, cmd := range cmds {
		if err := s.Apply(cmd); err != nil {
			return s.visited.Len(), fmt.Errorf("command %d: %w", i+1, err)
		}
	}
	s.log.Info("run complete",
		zap.Int("knots", s.chain.Len()),
		zap.Int("commands", len(cmds)),
		zap.Int("steps", s.steps),
		zap.Int("early_exits", s.earlyExits),
		zap.Int("visited", s.visited.Len()))
	return s.visited.Len(), nil
}

// PositionsVisited runs cmds on a fresh chain of n knots and returns the number
// of distinct cells the tail occupied, origin included.
func PositionsVisited(cmds []Command, n int, opts ...Option) (int, error) {
	s, err := New(n, opts...)
	if err != nil {
		return 0, err
	}
	return s.Run(cmds)
}
