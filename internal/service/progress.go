package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eduassist/backend/internal/domain/course"
	"github.com/eduassist/backend/internal/domain/progress"
	"github.com/eduassist/backend/internal/domain/recommend"
	"github.com/eduassist/backend/internal/notify"
	"github.com/eduassist/backend/internal/store"
	"github.com/eduassist/backend/internal/worker"
)

// ProgressService serves dashboard aggregates and drives the completion
// rollup. Rollups follow the same optimistic pattern as quiz results: the
// hierarchy percentages are recomputed locally and returned immediately,
// the user_progress upserts run on the pool.
type ProgressService struct {
	store   store.Store
	catalog *course.Catalog
	feed    *notify.Feed
	logger  *slog.Logger
	pool    *worker.Pool[persistOutcome]
	now     func() time.Time
}

func NewProgressService(st store.Store, catalog *course.Catalog, feed *notify.Feed, logger *slog.Logger, now func() time.Time) *ProgressService {
	s := &ProgressService{
		store:   st,
		catalog: catalog,
		feed:    feed,
		logger:  logger,
		pool:    worker.NewPool[persistOutcome](2, 16),
		now:     now,
	}
	go s.consumeOutcomes()
	return s
}

func (s *ProgressService) consumeOutcomes() {
	for result := range s.pool.Results() {
		out := result.Output
		if out.err == nil {
			continue
		}
		s.logger.Error("progress write failed", "job_id", result.JobID, "error", out.err)
		s.feed.Push(out.notice)
	}
}

func (s *ProgressService) Close() {
	s.pool.Close()
}

// ── Dashboard reads ─────────────────────────────────────────────────────────

// Stats recomputes the learner's aggregate stats from the full history.
func (s *ProgressService) Stats(ctx context.Context, userID string) (progress.Stats, error) {
	history, err := s.store.ListQuizResults(ctx, userID)
	if err != nil {
		return progress.Stats{}, err
	}
	return progress.Compute(history, s.now()), nil
}

// Activity returns the recent-activity feed entries.
func (s *ProgressService) Activity(ctx context.Context, userID string) ([]progress.Activity, error) {
	history, err := s.store.ListQuizResults(ctx, userID)
	if err != nil {
		return nil, err
	}
	return progress.RecentActivity(history), nil
}

// Recommendations proposes follow-on topics from the attempted-topic set.
func (s *ProgressService) Recommendations(ctx context.Context, userID string) ([]recommend.Item, error) {
	history, err := s.store.ListQuizResults(ctx, userID)
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(history))
	for _, r := range history {
		topics = append(topics, r.Topic)
	}
	return recommend.ForTopics(topics), nil
}

// ── Catalog reads with progress applied ─────────────────────────────────────

// Courses lists the catalog with the learner's stored course percentages.
func (s *ProgressService) Courses(ctx context.Context, userID string) ([]course.Course, error) {
	byContent, err := s.store.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	courses := s.catalog.Courses()
	for i := range courses {
		courses[i].Progress = byContent[courses[i].ID]
	}
	return courses, nil
}

// Course returns one course with curriculum and the learner's unit
// completion overlaid.
func (s *ProgressService) Course(ctx context.Context, userID, courseID string) (course.Course, error) {
	c, ok := s.catalog.Course(courseID)
	if !ok {
		return course.Course{}, store.ErrNotFound
	}
	byContent, err := s.store.GetProgress(ctx, userID)
	if err != nil {
		return course.Course{}, err
	}
	c.ApplyProgress(byContent)
	return c, nil
}

// Roadmaps lists the roadmaps with resource completion overlaid.
func (s *ProgressService) Roadmaps(ctx context.Context, userID string) ([]course.Roadmap, error) {
	byContent, err := s.store.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	roadmaps := s.catalog.Roadmaps()
	for i := range roadmaps {
		roadmaps[i].ApplyProgress(byContent)
	}
	return roadmaps, nil
}

// ── Completion writes ───────────────────────────────────────────────────────

// CompleteUnit marks a unit done, rolls the hierarchy up and returns the
// updated course immediately. The leaf row and the recomputed course row
// are upserted asynchronously.
func (s *ProgressService) CompleteUnit(ctx context.Context, userID, courseID, moduleID, unitID string) (course.Course, error) {
	c, err := s.Course(ctx, userID, courseID)
	if err != nil {
		return course.Course{}, err
	}
	if !c.CompleteUnit(moduleID, unitID) {
		return course.Course{}, store.ErrNotFound
	}

	s.upsert(userID, course.UnitContentID(courseID, moduleID, unitID), "unit", 100)
	s.upsert(userID, courseID, "course", c.Progress)
	return c, nil
}

// CompleteResource marks a roadmap resource done and rolls up the step and
// roadmap percentages.
func (s *ProgressService) CompleteResource(ctx context.Context, userID, roadmapID, stepID, resourceTitle string) (course.Roadmap, error) {
	r, ok := s.catalog.Roadmap(roadmapID)
	if !ok {
		return course.Roadmap{}, store.ErrNotFound
	}
	byContent, err := s.store.GetProgress(ctx, userID)
	if err != nil {
		return course.Roadmap{}, err
	}
	r.ApplyProgress(byContent)

	if !r.CompleteResource(stepID, resourceTitle) {
		return course.Roadmap{}, store.ErrNotFound
	}

	s.upsert(userID, course.ResourceContentID(stepID, resourceTitle), "resource", 100)
	for _, step := range r.Steps {
		if step.ID == stepID && step.Completed {
			s.upsert(userID, step.ID, "step", 100)
		}
	}
	s.upsert(userID, roadmapID, "roadmap", r.Progress)
	return r, nil
}

// upsert queues one user_progress write.
func (s *ProgressService) upsert(userID, contentID, contentType string, value int) {
	row := store.ProgressRow{
		UserID:      userID,
		ContentID:   contentID,
		ContentType: contentType,
		Progress:    value,
		UpdatedAt:   s.now(),
	}
	jobID := fmt.Sprintf("%s/%s", userID, contentID)
	s.pool.Submit(jobID, func() persistOutcome {
		return persistOutcome{
			notice: "Failed to update progress.",
			err:    s.store.UpsertProgress(context.Background(), row),
		}
	})
}
