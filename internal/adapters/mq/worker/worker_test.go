package worker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/adapters/mq/queue"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/adapters/mq/worker"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/dedupe"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/rating"
	. "github.com/smartystreets/goconvey/convey"
)

type stubRater struct{}

func (stubRater) Rate(p model.Player, role string) rating.Rating {
	return rating.Rating{Absolute: 42, Normalized: "42%"}
}

type stubPlayers struct {
	players map[string]model.Player
}

func (s *stubPlayers) Player(_ context.Context, id string) (model.Player, error) {
	return s.players[id], nil
}

type recordingHistory struct {
	mu      sync.Mutex
	records []model.RatingRecord
}

func (h *recordingHistory) AppendIfChanged(_ context.Context, rec model.RatingRecord) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, rec)
	return true, nil
}

func (h *recordingHistory) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

func TestPoolProcessesJobs(t *testing.T) {
	Convey("Given a pool wired to a queue", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		q := queue.NewInMemoryQueue(queue.WithCapacity(16))
		players := &stubPlayers{players: map[string]model.Player{
			"p1": {ID: "p1", AssignedRoles: []string{"CD-D", "FB-S"}},
		}}
		history := &recordingHistory{}
		deduper := dedupe.NewInMemoryDeduper()

		pool := worker.NewPool(2, q, stubRater{}, players, history, deduper)
		pool.Start(ctx)

		Convey("When a job without explicit roles is enqueued", func() {
			deduper.SeenAndRecord(ctx, "p1")
			So(q.Enqueue(ctx, worker.Job{PlayerID: "p1"}), ShouldBeTrue)

			Convey("Then every assigned role is rated and the player is released", func() {
				deadline := time.Now().Add(2 * time.Second)
				for history.count() < 2 && time.Now().Before(deadline) {
					time.Sleep(10 * time.Millisecond)
				}
				So(history.count(), ShouldEqual, 2)

				for deduper.Size() > 0 && time.Now().Before(deadline) {
					time.Sleep(10 * time.Millisecond)
				}
				So(deduper.Size(), ShouldEqual, 0)
			})
		})

		Convey("When the pool shuts down", func() {
			So(pool.Shutdown(ctx), ShouldBeNil)

			Convey("Then the queue refuses further jobs", func() {
				So(q.Enqueue(ctx, worker.Job{PlayerID: "p1"}), ShouldBeFalse)
			})
		})
	})
}
