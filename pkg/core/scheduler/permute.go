package scheduler

import "github.com/carmelly/peeps-scheduler/pkg/core/model"

// Permutations enumerates every ordering of events, via Heap's algorithm. The
// search is brute-force by design (§4.4); callers are expected to have
// already bounded len(events) via TrimOverlap.
func Permutations(events []*model.Event) [][]*model.Event {
	n := len(events)
	if n == 0 {
		return nil
	}
	result := make([][]*model.Event, 0, factorial(n))
	current := append([]*model.Event(nil), events...)
	c := make([]int, n)

	emit := func() {
		result = append(result, append([]*model.Event(nil), current...))
	}

	emit()
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				current[0], current[i] = current[i], current[0]
			} else {
				current[c[i]], current[i] = current[i], current[c[i]]
			}
			emit()
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
	return result
}

func factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}
