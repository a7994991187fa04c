package dedupe_test

import (
	"context"
	"sync"
	"testing"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDeduper(t *testing.T) {
	Convey("Given an in-memory deduper", t, func() {
		ctx := context.Background()
		d := dedupe.NewInMemoryDeduper(dedupe.WithInitialCapacity(16))

		Convey("When a key is recorded twice", func() {
			first := d.SeenAndRecord(ctx, "player-1")
			second := d.SeenAndRecord(ctx, "player-1")

			Convey("Then only the first record is new", func() {
				So(first, ShouldBeFalse)
				So(second, ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When a key is unrecorded", func() {
			d.SeenAndRecord(ctx, "player-1")
			d.Unrecord(ctx, "player-1")

			Convey("Then it can be recorded again", func() {
				So(d.SeenAndRecord(ctx, "player-1"), ShouldBeFalse)
			})
		})

		Convey("When many goroutines race on the same key", func() {
			const n = 64
			var wg sync.WaitGroup
			newCount := make(chan bool, n)
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					newCount <- !d.SeenAndRecord(ctx, "player-1")
				}()
			}
			wg.Wait()
			close(newCount)

			Convey("Then exactly one wins", func() {
				wins := 0
				for won := range newCount {
					if won {
						wins++
					}
				}
				So(wins, ShouldEqual, 1)
				So(d.Size(), ShouldEqual, 1)
			})
		})
	})
}
