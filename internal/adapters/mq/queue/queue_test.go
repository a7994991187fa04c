package queue_test

import (
	"context"
	"testing"
	"time"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/adapters/mq/queue"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryQueue(t *testing.T) {
	Convey("Given a bounded in-memory queue", t, func() {
		ctx := context.Background()
		q := queue.NewInMemoryQueue(queue.WithCapacity(2))

		Convey("When jobs fit the capacity", func() {
			So(q.Enqueue(ctx, queue.Job{PlayerID: "p1"}), ShouldBeTrue)
			So(q.Enqueue(ctx, queue.Job{PlayerID: "p2"}), ShouldBeTrue)
			So(q.Len(ctx), ShouldEqual, 2)

			Convey("Then overflow is rejected without blocking", func() {
				So(q.Enqueue(ctx, queue.Job{PlayerID: "p3"}), ShouldBeFalse)
			})

			Convey("Then dequeue delivers in order", func() {
				jobs := q.Dequeue(ctx)
				So((<-jobs).PlayerID, ShouldEqual, "p1")
				So((<-jobs).PlayerID, ShouldEqual, "p2")
			})
		})

		Convey("When the queue is closed", func() {
			So(q.Enqueue(ctx, queue.Job{PlayerID: "p1"}), ShouldBeTrue)
			So(q.Close(), ShouldBeNil)

			Convey("Then enqueue is refused and close is idempotent", func() {
				So(q.Enqueue(ctx, queue.Job{PlayerID: "p2"}), ShouldBeFalse)
				So(q.Close(), ShouldBeNil)
			})

			Convey("Then the dequeue channel drains and closes", func() {
				jobs := q.Dequeue(ctx)
				j, ok := <-jobs
				So(ok, ShouldBeTrue)
				So(j.PlayerID, ShouldEqual, "p1")

				select {
				case _, ok := <-jobs:
					So(ok, ShouldBeFalse)
				case <-time.After(time.Second):
					t.Fatal("dequeue channel did not close")
				}
			})
		})
	})
}
