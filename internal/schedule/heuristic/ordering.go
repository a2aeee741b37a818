package heuristic

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"branchboard/internal/model"
	"branchboard/internal/schedule"
)

// minHours guards the WSPT ratio against a zero divisor.
const minHours = 1e-9

// ErrDependencyOrder is returned by CheckDependencyOrder.
var ErrDependencyOrder = errors.New("dependency order violated")

// OrderByEDD sorts by deadline ascending. Tasks without a deadline go last.
// Ties keep input order.
func OrderByEDD(tasks []model.Task) []model.Task {
	out := append([]model.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		return deadlineBefore(out[i], out[j])
	})
	return out
}

// OrderByWSPT sorts by priority weight per hour, highest first. Ties keep input order.
func OrderByWSPT(tasks []model.Task) []model.Task {
	out := append([]model.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		return WSPTRatio(out[i]) > WSPTRatio(out[j])
	})
	return out
}

// WSPTRatio is priority weight divided by effective hours.
func WSPTRatio(t model.Task) float64 {
	return float64(t.Priority.Weight()) / math.Max(t.EffectiveHours(), minHours)
}

// OrderByDependencies emits tasks in a dependency-respecting order. Only
// dependencies present in tasks count; unknown ids are treated as satisfied.
// Among ready tasks the pick is by priority, then deadline, then input order.
//
// Tasks that never become ready (cycle members and anything depending on
// them) are returned in blocked, in input order.
func OrderByDependencies(tasks []model.Task) (ordered []model.Task, blocked []model.Task) {
	return topoOrder(tasks, func(a, b int) bool { return readyBefore(tasks, a, b) })
}

// OrderPreserving is OrderByDependencies with input order as the only
// tie-break: a task moves only when one of its in-set dependencies comes later.
func OrderPreserving(tasks []model.Task) (ordered []model.Task, blocked []model.Task) {
	return topoOrder(tasks, func(a, b int) bool { return a < b })
}

// CheckDependencyOrder reports the first task in ordered that is placed before,
// or without, one of its in-set dependencies. The set is taken from tasks.
func CheckDependencyOrder(ordered, tasks []model.Task) error {
	pos := make(map[string]int, len(ordered))
	for i, t := range ordered {
		if _, dup := pos[t.ID]; !dup {
			pos[t.ID] = i
		}
	}

	g := newDepGraph(tasks)
	for i, deps := range g.deps {
		at, placed := pos[tasks[i].ID]
		if !placed {
			continue
		}
		for _, j := range deps {
			dat, ok := pos[tasks[j].ID]
			if !ok {
				return fmt.Errorf("%w: %s placed without %s", ErrDependencyOrder, tasks[i].ID, tasks[j].ID)
			}
			if dat > at {
				return fmt.Errorf("%w: %s placed before %s", ErrDependencyOrder, tasks[i].ID, tasks[j].ID)
			}
		}
	}
	return nil
}

// topoOrder is Kahn's traversal over the in-set graph; before picks among ready tasks.
func topoOrder(tasks []model.Task, before func(a, b int) bool) (ordered []model.Task, blocked []model.Task) {
	g := newDepGraph(tasks)

	remaining := make([]int, len(tasks))
	ready := make([]int, 0, len(tasks))
	for i := range tasks {
		remaining[i] = len(g.deps[i])
		if remaining[i] == 0 {
			ready = append(ready, i)
		}
	}

	emitted := make([]bool, len(tasks))
	ordered = make([]model.Task, 0, len(tasks))
	for len(ready) > 0 {
		best := 0
		for k := 1; k < len(ready); k++ {
			if before(ready[k], ready[best]) {
				best = k
			}
		}
		idx := ready[best]
		ready = append(ready[:best], ready[best+1:]...)

		ordered = append(ordered, tasks[idx])
		emitted[idx] = true

		for _, dep := range g.dependents[idx] {
			remaining[dep]--
			if remaining[dep] == 0 {
				ready = append(ready, dep)
			}
		}
	}

	for i, ok := range emitted {
		if !ok {
			blocked = append(blocked, tasks[i])
		}
	}
	return ordered, blocked
}

// HasInSetDependencies reports whether any task depends on another task of the set.
func HasInSetDependencies(tasks []model.Task) bool {
	g := newDepGraph(tasks)
	for _, d := range g.deps {
		if len(d) > 0 {
			return true
		}
	}
	return false
}

// SelectPolicy picks the method for MethodAuto: dependencies when any in-set
// dependency exists, EDD when any deadline exists, WSPT otherwise.
func SelectPolicy(tasks []model.Task) schedule.Method {
	if HasInSetDependencies(tasks) {
		return schedule.MethodDependencies
	}
	for _, t := range tasks {
		if t.HasDeadline() {
			return schedule.MethodEDD
		}
	}
	return schedule.MethodWSPT
}

// Order applies method to tasks. MethodAuto is resolved with SelectPolicy.
// It returns the applied method and any tasks blocked by dependency cycles.
func Order(tasks []model.Task, method schedule.Method) ([]model.Task, schedule.Method, []model.Task) {
	if method == schedule.MethodAuto || method == "" {
		method = SelectPolicy(tasks)
	}
	switch method {
	case schedule.MethodEDD:
		return OrderByEDD(tasks), method, nil
	case schedule.MethodDependencies:
		ordered, blocked := OrderByDependencies(tasks)
		return ordered, method, blocked
	default:
		return OrderByWSPT(tasks), schedule.MethodWSPT, nil
	}
}

// depGraph indexes in-set dependency edges by input position.
type depGraph struct {
	deps       [][]int // deps[i]: distinct in-set tasks i waits for
	dependents [][]int // dependents[i]: tasks waiting for i
}

func newDepGraph(tasks []model.Task) depGraph {
	index := make(map[string]int, len(tasks))
	for i, t := range tasks {
		if _, dup := index[t.ID]; !dup {
			index[t.ID] = i
		}
	}

	g := depGraph{
		deps:       make([][]int, len(tasks)),
		dependents: make([][]int, len(tasks)),
	}
	for i, t := range tasks {
		seen := make(map[int]bool, len(t.DependsOn))
		for _, id := range t.DependsOn {
			j, ok := index[id]
			if !ok || seen[j] {
				continue
			}
			seen[j] = true
			g.deps[i] = append(g.deps[i], j)
			g.dependents[j] = append(g.dependents[j], i)
		}
	}
	return g
}

// readyBefore is the pick order for ready tasks: priority desc, deadline asc
// (deadline before none), input position.
func readyBefore(tasks []model.Task, a, b int) bool {
	pa, pb := tasks[a].Priority.Weight(), tasks[b].Priority.Weight()
	if pa != pb {
		return pa > pb
	}
	if deadlineBefore(tasks[a], tasks[b]) {
		return true
	}
	if deadlineBefore(tasks[b], tasks[a]) {
		return false
	}
	return a < b
}

func deadlineBefore(a, b model.Task) bool {
	switch {
	case a.HasDeadline() && b.HasDeadline():
		return a.Deadline.Before(*b.Deadline)
	case a.HasDeadline():
		return true
	default:
		return false
	}
}
