package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/adapters/repository"
	service "github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/app"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/config"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/definitions"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func gkAttrs(value string) map[string]string {
	attrs := map[string]string{}
	for name := range definitions.GoalkeeperCategories {
		attrs[name] = value
	}
	return attrs
}

func waitFor(deadline time.Duration, cond func() bool) bool {
	end := time.Now().Add(deadline)
	for time.Now().Before(end) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a started service over an in-memory store", t, func() {
		ctx := context.Background()
		cfg := config.New()
		cfg.WorkerCount = 2
		store := repository.NewMemStore()
		svc := service.New(cfg, service.WithStore(store))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When players are imported without roles", func() {
			n, err := svc.ImportPlayers(ctx, []model.Player{
				{ID: "gk1", Name: "Keeper One", Club: "FC Test", Positions: []string{"GK"}, Attributes: gkAttrs("20")},
				{ID: "gk2", Name: "Keeper Two", Club: "FC Test", Positions: []string{"GK"}, Attributes: gkAttrs("10")},
			})
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 2)

			Convey("Then default roles are assigned from positions", func() {
				p, err := store.Player(ctx, "gk1")
				So(err, ShouldBeNil)
				So(p.AssignedRoles, ShouldResemble, []string{"GK-D", "SK-A", "SK-D", "SK-S"})
			})

			Convey("Then the workers rate every assigned role", func() {
				// 2 players x 4 goalkeeper roles.
				So(waitFor(2*time.Second, func() bool { return store.RatingCount(ctx) >= 8 }), ShouldBeTrue)

				rows, err := svc.Ratings(ctx, "gk1")
				So(err, ShouldBeNil)
				So(len(rows), ShouldEqual, 4)
				So(rows[0].Role, ShouldEqual, "GK-D")
				So(rows[0].Normalized, ShouldEqual, "100%")
			})

			Convey("Then the leaderboard ranks by rating", func() {
				So(waitFor(2*time.Second, func() bool { return store.RatingCount(ctx) >= 8 }), ShouldBeTrue)

				top, err := svc.Leaderboard(ctx, "GK-D", 10)
				So(err, ShouldBeNil)
				So(len(top), ShouldEqual, 2)
				So(top[0].PlayerID, ShouldEqual, "gk1")
				So(top[0].Rank, ShouldEqual, 1)
			})

			Convey("Then a squad build seats the better keeper", func() {
				So(waitFor(2*time.Second, func() bool { return store.RatingCount(ctx) >= 8 }), ShouldBeTrue)

				s, err := svc.BuildSquad(ctx, "4-4-2 Classic", "FC Test", "")
				So(err, ShouldBeNil)
				So(s.StartingXI["GK"].PlayerID, ShouldEqual, "gk1")
				So(s.BTeam["GK"].PlayerID, ShouldEqual, "gk2")
			})

			Convey("Then a second-team club staffs the second XI", func() {
				n, err := svc.ImportPlayers(ctx, []model.Player{
					{ID: "gk3", Name: "Keeper Three", Club: "FC Test II", Positions: []string{"GK"}, Attributes: gkAttrs("15")},
				})
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)
				So(waitFor(2*time.Second, func() bool { return store.RatingCount(ctx) >= 12 }), ShouldBeTrue)

				s, err := svc.BuildSquad(ctx, "4-4-2 Classic", "FC Test", "FC Test II")
				So(err, ShouldBeNil)
				So(s.SecondXI["GK"].PlayerID, ShouldEqual, "gk3")
			})
		})

		Convey("When querying metadata", func() {
			Convey("Then tactics and roles come from the definitions", func() {
				tactics := svc.Tactics(ctx)
				So(tactics, ShouldContainKey, "4-4-2 Classic")
				So(tactics, ShouldContainKey, "4-2-3-1 Gegenpress")

				roles := svc.Roles(ctx)
				So(roles["Goalkeepers"], ShouldContainKey, "GK-D")
			})

			Convey("Then unknown roles are rejected", func() {
				_, err := svc.Leaderboard(ctx, "XX-X", 5)
				So(err, ShouldWrap, definitions.ErrUnknownRole)
				_, err = svc.History(ctx, "gk1", "XX-X")
				So(err, ShouldWrap, definitions.ErrUnknownRole)
			})
		})

		Convey("When stats are requested", func() {
			stats := svc.GetStats()
			So(stats["started"], ShouldBeTrue)
			So(stats, ShouldContainKey, "players")
			So(stats, ShouldContainKey, "rating_records")
		})
	})
}

func TestServiceImportValidation(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		cfg := config.New()
		cfg.WorkerCount = 1
		svc := service.New(cfg, service.WithStore(repository.NewMemStore()))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When a player has no id", func() {
			n, err := svc.ImportPlayers(ctx, []model.Player{{Name: "Ghost"}})
			So(err, ShouldBeNil)

			Convey("Then the row is skipped", func() {
				So(n, ShouldEqual, 0)
			})
		})

		Convey("When a squad is requested without players", func() {
			_, err := svc.BuildSquad(ctx, "4-4-2 Classic", "Nowhere FC", "")
			So(err, ShouldNotBeNil)
		})
	})
}
