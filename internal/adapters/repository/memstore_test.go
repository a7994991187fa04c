package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/adapters/repository"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemStorePlayers(t *testing.T) {
	Convey("Given an in-memory store", t, func() {
		ctx := context.Background()
		s := repository.NewMemStore()

		Convey("When players are upserted", func() {
			So(s.UpsertPlayer(ctx, model.Player{ID: "p2", Name: "B", Club: "United"}), ShouldBeNil)
			So(s.UpsertPlayer(ctx, model.Player{ID: "p1", Name: "A", Club: "City"}), ShouldBeNil)
			So(s.UpsertPlayer(ctx, model.Player{ID: "p1", Name: "A2", Club: "City"}), ShouldBeNil)

			Convey("Then lookups and listings reflect the latest state", func() {
				p, err := s.Player(ctx, "p1")
				So(err, ShouldBeNil)
				So(p.Name, ShouldEqual, "A2")

				all, err := s.Players(ctx)
				So(err, ShouldBeNil)
				So(len(all), ShouldEqual, 2)
				So(all[0].ID, ShouldEqual, "p1")

				city, err := s.PlayersByClub(ctx, "City")
				So(err, ShouldBeNil)
				So(len(city), ShouldEqual, 1)
				So(s.PlayerCount(ctx), ShouldEqual, 2)
			})
		})

		Convey("When an unknown player is requested", func() {
			_, err := s.Player(ctx, "nope")
			So(err, ShouldWrap, repository.ErrNotFound)
		})
	})
}

func TestMemStoreHistory(t *testing.T) {
	Convey("Given a store with rating history", t, func() {
		ctx := context.Background()
		s := repository.NewMemStore()
		base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		rec := func(norm string, offset time.Duration) model.RatingRecord {
			return model.RatingRecord{PlayerID: "p1", Role: "CD-D", Normalized: norm, TS: base.Add(offset)}
		}

		Convey("When a first record is appended", func() {
			written, err := s.AppendIfChanged(ctx, rec("47%", 0))
			So(err, ShouldBeNil)
			So(written, ShouldBeTrue)

			Convey("Then a sub-point move is suppressed", func() {
				written, err := s.AppendIfChanged(ctx, rec("47%", time.Hour))
				So(err, ShouldBeNil)
				So(written, ShouldBeFalse)
				So(s.RatingCount(ctx), ShouldEqual, 1)
			})

			Convey("Then a full-point move is recorded", func() {
				written, err := s.AppendIfChanged(ctx, rec("48%", time.Hour))
				So(err, ShouldBeNil)
				So(written, ShouldBeTrue)

				latest, err := s.LatestRating(ctx, "p1", "CD-D")
				So(err, ShouldBeNil)
				So(latest.Normalized, ShouldEqual, "48%")

				series, err := s.RatingSeries(ctx, "p1", "CD-D")
				So(err, ShouldBeNil)
				So(len(series), ShouldEqual, 2)
				So(series[0].Normalized, ShouldEqual, "47%")
			})
		})

		Convey("When a pair has no history", func() {
			_, err := s.LatestRating(ctx, "p1", "GK-D")
			So(err, ShouldWrap, repository.ErrNotFound)
		})

		Convey("When a player is rated for several roles", func() {
			_, _ = s.AppendIfChanged(ctx, rec("47%", 0))
			_, err := s.AppendIfChanged(ctx, model.RatingRecord{PlayerID: "p1", Role: "BPD-D", Normalized: "52%", TS: base})
			So(err, ShouldBeNil)

			Convey("Then the per-player snapshot lists one record per role", func() {
				recs, err := s.LatestRatings(ctx, "p1")
				So(err, ShouldBeNil)
				So(len(recs), ShouldEqual, 2)
				So(recs[0].Role, ShouldEqual, "BPD-D")
				So(recs[1].Role, ShouldEqual, "CD-D")
			})
		})
	})
}

func TestMemStoreLeaderboard(t *testing.T) {
	Convey("Given ratings for several players", t, func() {
		ctx := context.Background()
		s := repository.NewMemStore()
		ts := time.Now().UTC()

		So(s.UpsertPlayer(ctx, model.Player{ID: "p1", Name: "A", Club: "City"}), ShouldBeNil)
		So(s.UpsertPlayer(ctx, model.Player{ID: "p2", Name: "B", Club: "United"}), ShouldBeNil)
		So(s.UpsertPlayer(ctx, model.Player{ID: "p3", Name: "C", Club: "City"}), ShouldBeNil)

		for id, norm := range map[string]string{"p1": "70%", "p2": "85%", "p3": "85%"} {
			_, err := s.AppendIfChanged(ctx, model.RatingRecord{PlayerID: id, Role: "CD-D", Normalized: norm, TS: ts})
			So(err, ShouldBeNil)
		}

		Convey("When the leaderboard is queried", func() {
			top, err := s.TopByRole(ctx, "CD-D", 2)
			So(err, ShouldBeNil)

			Convey("Then entries rank by rating with id as tie break", func() {
				So(len(top), ShouldEqual, 2)
				So(top[0].PlayerID, ShouldEqual, "p2")
				So(top[0].Rank, ShouldEqual, 1)
				So(top[0].Name, ShouldEqual, "B")
				So(top[1].PlayerID, ShouldEqual, "p3")
			})
		})

		Convey("When the limit is invalid", func() {
			_, err := s.TopByRole(ctx, "CD-D", 0)
			So(err, ShouldWrap, repository.ErrInvalidLimit)
		})

		Convey("When the role has no ratings", func() {
			top, err := s.TopByRole(ctx, "GK-D", 5)
			So(err, ShouldBeNil)
			So(top, ShouldBeEmpty)
		})
	})
}
