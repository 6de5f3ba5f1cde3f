package scheduler

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

// SearchConfig bounds the Outer Search Loop (§5, §9): the range of per-role
// caps to try, the overlap trimmer's cap, the duration table for downgrades,
// and how many (cap, ordering) evaluations may run concurrently.
type SearchConfig struct {
	AbsMinRole    int
	AbsMaxRole    int
	MaxEvents     int
	DurationTable []model.Duration
	// Concurrency bounds the worker pool; 0 means errgroup's default (no
	// limit beyond what the runtime schedules).
	Concurrency int
}

// Result is the outcome of a full search.
type Result struct {
	// TopTier is the set of ranked, deduped schedules tying the best result
	// on all six ranking keys (§4.9). Empty means no ordering produced a
	// single valid event.
	TopTier []*model.Schedule
	// Truncated is set when ctx was cancelled before every (cap, ordering)
	// pair had been evaluated.
	Truncated bool
}

// Search runs sanitisation, overlap trimming, and the full (cap, ordering)
// evaluation grid, then ranks and dedupes the results. events and people are
// never mutated; every evaluation works against its own deep clone, so
// results are independent of goroutine scheduling order (§5).
func Search(ctx context.Context, events []*model.Event, people []*model.Person, requests model.PartnershipRequest, cfg SearchConfig) (*Result, error) {
	sanitised := SanitizeEvents(events, people, cfg.AbsMinRole)
	trimmed := TrimOverlap(sanitised, people, cfg.MaxEvents)

	type job struct {
		targetMax int
		ordering  []*model.Event
	}
	var jobs []job
	for targetMax := cfg.AbsMinRole; targetMax <= cfg.AbsMaxRole; targetMax++ {
		for _, ordering := range Permutations(trimmed) {
			jobs = append(jobs, job{targetMax: targetMax, ordering: ordering})
		}
	}

	// results is indexed by submission order, not completion order, so the
	// ranker sees a deterministic input slice regardless of which worker
	// finishes first.
	results := make([]*model.Schedule, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}

	truncated := false
	for i, j := range jobs {
		if ctx.Err() != nil {
			truncated = true
			break
		}
		i, j := i, j
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			orderingClone := model.CloneEvents(j.ordering)
			peopleClone := model.ClonePeople(people)
			EvaluateSequence(orderingClone, peopleClone, EvalConfig{
				TargetMax:     j.targetMax,
				AbsMinRole:    cfg.AbsMinRole,
				DurationTable: cfg.DurationTable,
			})
			schedule := BuildSchedule(orderingClone, peopleClone, requests)
			if len(schedule.ValidEvents) > 0 {
				results[i] = schedule
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		truncated = true
	}

	nonNil := make([]*model.Schedule, 0, len(results))
	for _, s := range results {
		if s != nil {
			nonNil = append(nonNil, s)
		}
	}

	tier := Rank(nonNil)
	for _, s := range tier {
		s.Truncated = truncated
	}

	return &Result{
		TopTier:   tier,
		Truncated: truncated,
	}, nil
}
