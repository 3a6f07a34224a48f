package recurrence

import (
	"fmt"
	"sync"

	"github.com/on-the-ground/kosmos/memo"
	"go.uber.org/zap"
)

// engine is the memoized evaluator shared by Sequence and Lattice.
type engine[K comparable, T any] struct {
	name  string
	table memo.Table[K, T]
	step  func(key K, self func(K) T) T
	// resolve answers indices that need no recursion: base cases, negative
	// indices and values outside the recursive domain.
	resolve func(key K) (T, bool, error)
	less    func(a, b K) bool
	budget  int
	logger  *zap.Logger

	mu sync.Mutex // held for check-compute-insert
}

func (e *engine[K, T]) value(key K) (T, error) {
	if v, ok, err := e.resolve(key); err != nil {
		return v, fmt.Errorf("%s: %w", e.name, err)
	} else if ok {
		return v, nil
	}
	if v, ok := e.table.Load(key); ok {
		return v, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	ev := &evaluation[K, T]{engine: e, scratch: make(map[K]T)}
	return ev.run(key)
}

func (e *engine[K, T]) clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.table.Clear()
	e.logger.Debug("recurrence cache cleared", zap.String("recurrence", e.name))
}

// evaluation is one top-down computation. scratch pins the values it
// computed so that a bounded table evicting them cannot stall progress.
type evaluation[K comparable, T any] struct {
	*engine[K, T]
	scratch map[K]T
}

func (ev *evaluation[K, T]) lookup(key K) (T, bool) {
	if v, ok := ev.scratch[key]; ok {
		return v, true
	}
	return ev.table.Load(key)
}

func (ev *evaluation[K, T]) run(root K) (T, error) {
	pending := []K{root}
	for len(pending) > 0 {
		top := pending[len(pending)-1]
		if _, ok := ev.lookup(top); ok {
			pending = pending[:len(pending)-1]
			continue
		}
		deferred, err := ev.attempt(top)
		if err != nil {
			var zero T
			return zero, err
		}
		if deferred != nil {
			ev.logger.Debug("recurrence depth budget reached",
				zap.String("recurrence", ev.name),
				zap.Any("deferred", *deferred),
				zap.Any("pending", top),
				zap.Int("stack", len(pending)),
			)
			pending = append(pending, *deferred)
			continue
		}
		pending = pending[:len(pending)-1]
	}
	v, _ := ev.lookup(root)
	return v, nil
}

func (ev *evaluation[K, T]) attempt(key K) (deferred *K, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch r := r.(type) {
		case deferral[K]:
			deferred = &r.key
		case raised:
			err = r.err
		default:
			panic(r)
		}
	}()
	ev.compute(key, 0)
	return nil, nil
}

func (ev *evaluation[K, T]) compute(key K, depth int) T {
	if v, ok := ev.lookup(key); ok {
		return v
	}
	if depth > ev.budget {
		panic(deferral[K]{key: key})
	}
	v := ev.step(key, func(next K) T {
		v, ok, err := ev.resolve(next)
		if err != nil {
			raise(fmt.Errorf("%s: %w", ev.name, err))
		}
		if ok {
			return v
		}
		if !ev.less(next, key) {
			raise(fmt.Errorf("%s: %w: %v requested while computing %v", ev.name, ErrNotSmaller, next, key))
		}
		return ev.compute(next, depth+1)
	})
	ev.scratch[key] = v
	ev.table.Store(key, v)
	return v
}
