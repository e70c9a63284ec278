// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/harsh1d/research-paper-analyzer/internal/cache"
	"github.com/harsh1d/research-paper-analyzer/internal/capability"
	"github.com/harsh1d/research-paper-analyzer/internal/citations"
	"github.com/harsh1d/research-paper-analyzer/internal/readability"
	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

const (
	// DefaultWorkers bounds the task pool. It also bounds how much abandoned
	// work timed-out tasks can leave behind in one run.
	DefaultWorkers = 4

	// DefaultTaskTimeout is the per-task deadline.
	DefaultTaskTimeout = 10 * time.Second
)

// Orchestrator fans all configured tasks out over a bounded worker pool and
// merges their results. The document is read-only during a run; the cache is
// the only shared mutable resource and is safe for concurrent use.
type Orchestrator struct {
	caps    capability.Set
	store   cache.Store
	logger  *zap.Logger
	workers int
	timeout time.Duration
}

// NewOrchestrator wires the capability set and result cache into an
// orchestrator. Zero config fields fall back to defaults.
func NewOrchestrator(caps capability.Set, store cache.Store, cfg types.OrchestratorConfig, logger *zap.Logger) *Orchestrator {
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	timeout := cfg.TaskTimeout
	if timeout <= 0 {
		timeout = DefaultTaskTimeout
	}
	if store == nil {
		store = cache.Disabled{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		caps:    caps,
		store:   store,
		logger:  logger,
		workers: workers,
		timeout: timeout,
	}
}

// Run executes every configured task against the document and returns the
// merged record. Run never fails: non-success tasks carry their default
// payloads and a non-success outcome. It returns only after every task has
// reached a terminal state.
func (o *Orchestrator) Run(ctx context.Context, doc types.Document) *types.AnalysisRecord {
	rec := &types.AnalysisRecord{
		RunID:      uuid.NewString(),
		Statistics: doc.Stats,
		Outcomes:   make(map[types.TaskName]types.TaskOutcome, len(types.AllTasks())),
	}
	fp := cache.Fingerprint(doc.Text)

	var mu sync.Mutex
	finish := func(name types.TaskName, outcome types.TaskOutcome) {
		mu.Lock()
		rec.Outcomes[name] = outcome
		mu.Unlock()
	}

	var g errgroup.Group
	g.SetLimit(o.workers)

	g.Go(func() error {
		var outcome types.TaskOutcome
		rec.Topic, outcome = runTask(ctx, o, types.TaskTopic, fp, defaultTopic(), func(ctx context.Context) (types.TopicClassification, error) {
			return o.classifyTopic(ctx, doc.Text)
		})
		finish(types.TaskTopic, outcome)
		return nil
	})
	g.Go(func() error {
		var outcome types.TaskOutcome
		rec.Sections, outcome = runTask(ctx, o, types.TaskSections, fp, types.SectionAnalysis{}, func(context.Context) (types.SectionAnalysis, error) {
			return detectSections(doc.Text), nil
		})
		finish(types.TaskSections, outcome)
		return nil
	})
	g.Go(func() error {
		var outcome types.TaskOutcome
		rec.Methodology, outcome = runTask(ctx, o, types.TaskMethodology, fp, defaultMethodology(), func(ctx context.Context) (types.MethodologyClassification, error) {
			return o.classifyMethodology(ctx, doc.Text)
		})
		finish(types.TaskMethodology, outcome)
		return nil
	})
	g.Go(func() error {
		var outcome types.TaskOutcome
		rec.Sentiment, outcome = runTask(ctx, o, types.TaskSentiment, fp, defaultSentiment(), func(ctx context.Context) (types.SentimentAnalysis, error) {
			return o.analyzeSentiment(ctx, doc.Text)
		})
		finish(types.TaskSentiment, outcome)
		return nil
	})
	g.Go(func() error {
		var outcome types.TaskOutcome
		rec.Keywords, outcome = runTask(ctx, o, types.TaskKeywords, fp, []types.Keyword{}, func(ctx context.Context) ([]types.Keyword, error) {
			return o.extractKeywords(ctx, doc.Text)
		})
		finish(types.TaskKeywords, outcome)
		return nil
	})
	g.Go(func() error {
		var outcome types.TaskOutcome
		rec.Entities, outcome = runTask(ctx, o, types.TaskEntities, fp, types.EntityMap{}, func(ctx context.Context) (types.EntityMap, error) {
			return o.recognizeEntities(ctx, doc.Text)
		})
		finish(types.TaskEntities, outcome)
		return nil
	})
	g.Go(func() error {
		var outcome types.TaskOutcome
		rec.Contribution, outcome = runTask(ctx, o, types.TaskContribution, fp, defaultContribution(), func(ctx context.Context) (types.ContributionType, error) {
			return o.classifyContribution(ctx, doc.Text)
		})
		finish(types.TaskContribution, outcome)
		return nil
	})
	g.Go(func() error {
		var outcome types.TaskOutcome
		rec.Citations, outcome = runTask(ctx, o, types.TaskCitations, fp, types.CitationAnalysis{}, func(context.Context) (types.CitationAnalysis, error) {
			return citations.Parse(doc.Text), nil
		})
		finish(types.TaskCitations, outcome)
		return nil
	})
	g.Go(func() error {
		var outcome types.TaskOutcome
		rec.Readability, outcome = runTask(ctx, o, types.TaskReadability, fp, types.ReadabilityAnalysis{}, func(context.Context) (types.ReadabilityAnalysis, error) {
			return readability.Analyze(doc.Text), nil
		})
		finish(types.TaskReadability, outcome)
		return nil
	})
	g.Go(func() error {
		var outcome types.TaskOutcome
		rec.Questions, outcome = runTask(ctx, o, types.TaskQuestions, fp, types.ResearchQuestions{}, func(context.Context) (types.ResearchQuestions, error) {
			return extractQuestions(doc.Text), nil
		})
		finish(types.TaskQuestions, outcome)
		return nil
	})
	g.Go(func() error {
		var outcome types.TaskOutcome
		rec.Summary, outcome = runTask(ctx, o, types.TaskSummary, fp, types.Summary{}, func(context.Context) (types.Summary, error) {
			return buildSummary(doc.Text), nil
		})
		finish(types.TaskSummary, outcome)
		return nil
	})

	// Task closures never return errors; Wait only fences completion.
	_ = g.Wait()

	o.logger.Info("analysis run complete",
		zap.String("run_id", rec.RunID),
		zap.Int("degraded_tasks", countDegraded(rec.Outcomes)),
	)
	return rec
}

// runTask executes one task with caching and a deadline. A fresh cached
// payload short-circuits the capability call. The compute call runs in its
// own goroutine so a capability that ignores cancellation is abandoned at
// the deadline rather than waited on; its late result is discarded.
func runTask[T any](ctx context.Context, o *Orchestrator, name types.TaskName, fp string, fallback T, compute func(context.Context) (T, error)) (T, types.TaskOutcome) {
	start := time.Now()

	if raw, ok := o.store.Get(name, fp); ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			o.logger.Debug("task served from cache", zap.String("task", string(name)))
			return cached, types.TaskOutcome{Status: types.StatusSuccess, CacheHit: true, Elapsed: time.Since(start)}
		}
		o.logger.Warn("discarding undecodable cache entry", zap.String("task", string(name)))
	}

	taskCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	type result struct {
		payload T
		err     error
	}
	done := make(chan result, 1)
	go func() {
		payload, err := compute(taskCtx)
		done <- result{payload, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			status := types.StatusUnavailable
			if errors.Is(r.err, context.DeadlineExceeded) {
				status = types.StatusTimedOut
			}
			o.logger.Warn("task degraded",
				zap.String("task", string(name)),
				zap.String("status", string(status)),
				zap.Error(r.err),
			)
			return fallback, types.TaskOutcome{Status: status, Reason: r.err.Error(), Elapsed: time.Since(start)}
		}
		if raw, err := json.Marshal(r.payload); err == nil {
			o.store.Put(name, fp, raw)
		}
		return r.payload, types.TaskOutcome{Status: types.StatusSuccess, Elapsed: time.Since(start)}
	case <-taskCtx.Done():
		o.logger.Warn("task timed out", zap.String("task", string(name)), zap.Duration("timeout", o.timeout))
		return fallback, types.TaskOutcome{Status: types.StatusTimedOut, Reason: taskCtx.Err().Error(), Elapsed: time.Since(start)}
	}
}

func countDegraded(outcomes map[types.TaskName]types.TaskOutcome) int {
	n := 0
	for _, outcome := range outcomes {
		if outcome.Degraded() {
			n++
		}
	}
	return n
}
