package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/namathieu/lineup/internal/adapters/repository"
	"github.com/namathieu/lineup/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func player(name string, age int) model.Player {
	return model.Player{Name: name, Age: age, Skills: map[string]int{"Vision": 70}}
}

func TestRosterStore_Add(t *testing.T) {
	Convey("Given an empty roster store", t, func() {
		ctx := context.Background()
		store := repository.NewRosterStore()

		Convey("When adding players", func() {
			So(store.Add(ctx, player("alpha", 20)), ShouldBeNil)
			So(store.Add(ctx, player("beta", 21)), ShouldBeNil)

			Convey("Then they list in insertion order", func() {
				So(store.Count(ctx), ShouldEqual, 2)
				So(store.List(ctx).Names(), ShouldResemble, []string{"alpha", "beta"})
			})
		})

		Convey("When adding a duplicate name", func() {
			So(store.Add(ctx, player("alpha", 20)), ShouldBeNil)
			err := store.Add(ctx, player("alpha", 25))

			Convey("Then it fails with ErrDuplicateName", func() {
				So(errors.Is(err, repository.ErrDuplicateName), ShouldBeTrue)
				So(store.Count(ctx), ShouldEqual, 1)
			})
		})

		Convey("When the name is blank", func() {
			err := store.Add(ctx, player("   ", 20))

			Convey("Then it fails with ErrEmptyName", func() {
				So(errors.Is(err, repository.ErrEmptyName), ShouldBeTrue)
			})
		})

		Convey("When the name carries surrounding whitespace", func() {
			So(store.Add(ctx, player("  gamma  ", 20)), ShouldBeNil)

			Convey("Then it is stored trimmed", func() {
				p, err := store.Get(ctx, "gamma")
				So(err, ShouldBeNil)
				So(p.Name, ShouldEqual, "gamma")
			})
		})

		Convey("When the store is bounded", func() {
			bounded := repository.NewRosterStore(repository.WithMaxSize(2))
			So(bounded.Add(ctx, player("a", 20)), ShouldBeNil)
			So(bounded.Add(ctx, player("b", 20)), ShouldBeNil)
			err := bounded.Add(ctx, player("c", 20))

			Convey("Then the overflow add fails with ErrRosterFull", func() {
				So(errors.Is(err, repository.ErrRosterFull), ShouldBeTrue)
				So(bounded.Count(ctx), ShouldEqual, 2)
			})
		})
	})
}

func TestRosterStore_Update(t *testing.T) {
	Convey("Given a store with two players", t, func() {
		ctx := context.Background()
		store := repository.NewRosterStore()
		So(store.Add(ctx, player("alpha", 20)), ShouldBeNil)
		So(store.Add(ctx, player("beta", 21)), ShouldBeNil)

		Convey("When updating in place", func() {
			updated := player("alpha", 26)
			updated.Skills["Vision"] = 90
			So(store.Update(ctx, "alpha", updated), ShouldBeNil)

			Convey("Then the record changes but keeps its position", func() {
				p, err := store.Get(ctx, "alpha")
				So(err, ShouldBeNil)
				So(p.Age, ShouldEqual, 26)
				So(p.Skill("Vision"), ShouldEqual, 90)
				So(store.List(ctx).Names(), ShouldResemble, []string{"alpha", "beta"})
			})
		})

		Convey("When renaming a player", func() {
			So(store.Update(ctx, "alpha", player("omega", 20)), ShouldBeNil)

			Convey("Then the new name resolves and the old one does not", func() {
				_, err := store.Get(ctx, "alpha")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
				p, err := store.Get(ctx, "omega")
				So(err, ShouldBeNil)
				So(p.Name, ShouldEqual, "omega")
				So(store.List(ctx).Names(), ShouldResemble, []string{"omega", "beta"})
			})
		})

		Convey("When renaming onto a taken name", func() {
			err := store.Update(ctx, "alpha", player("beta", 20))

			Convey("Then it fails with ErrDuplicateName", func() {
				So(errors.Is(err, repository.ErrDuplicateName), ShouldBeTrue)
			})
		})

		Convey("When the target does not exist", func() {
			err := store.Update(ctx, "ghost", player("ghost", 20))

			Convey("Then it fails with ErrNotFound", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestRosterStore_Remove(t *testing.T) {
	Convey("Given a store with three players", t, func() {
		ctx := context.Background()
		store := repository.NewRosterStore()
		So(store.Add(ctx, player("alpha", 20)), ShouldBeNil)
		So(store.Add(ctx, player("beta", 21)), ShouldBeNil)
		So(store.Add(ctx, player("gamma", 22)), ShouldBeNil)

		Convey("When removing the middle player", func() {
			So(store.Remove(ctx, "beta"), ShouldBeNil)

			Convey("Then order closes up and lookups still work", func() {
				So(store.List(ctx).Names(), ShouldResemble, []string{"alpha", "gamma"})
				p, err := store.Get(ctx, "gamma")
				So(err, ShouldBeNil)
				So(p.Age, ShouldEqual, 22)
			})
		})

		Convey("When removing an unknown name", func() {
			err := store.Remove(ctx, "ghost")

			Convey("Then it fails with ErrNotFound", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestRosterStore_Replace(t *testing.T) {
	Convey("Given a store with existing players", t, func() {
		ctx := context.Background()
		store := repository.NewRosterStore()
		So(store.Add(ctx, player("old", 20)), ShouldBeNil)

		Convey("When replacing with a fresh roster", func() {
			incoming := model.Roster{player("one", 18), player("two", 19)}
			So(store.Replace(ctx, incoming), ShouldBeNil)

			Convey("Then only the incoming players remain", func() {
				So(store.List(ctx).Names(), ShouldResemble, []string{"one", "two"})
				_, err := store.Get(ctx, "old")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When the incoming roster has duplicate names", func() {
			incoming := model.Roster{player("dup", 18), player("dup", 19)}
			err := store.Replace(ctx, incoming)

			Convey("Then it fails and the old roster survives", func() {
				So(errors.Is(err, repository.ErrDuplicateName), ShouldBeTrue)
				So(store.List(ctx).Names(), ShouldResemble, []string{"old"})
			})
		})

		Convey("When replacing with an empty roster", func() {
			So(store.Replace(ctx, model.Roster{}), ShouldBeNil)

			Convey("Then the store empties", func() {
				So(store.Count(ctx), ShouldEqual, 0)
			})
		})
	})
}

func TestRosterStore_CopySemantics(t *testing.T) {
	Convey("Given a stored player", t, func() {
		ctx := context.Background()
		store := repository.NewRosterStore()
		original := player("alpha", 20)
		So(store.Add(ctx, original), ShouldBeNil)

		Convey("When mutating the caller's copy after the fact", func() {
			original.Skills["Vision"] = 1

			Convey("Then the stored record is unaffected", func() {
				p, err := store.Get(ctx, "alpha")
				So(err, ShouldBeNil)
				So(p.Skill("Vision"), ShouldEqual, 70)
			})
		})

		Convey("When mutating a record handed out by Get", func() {
			p, err := store.Get(ctx, "alpha")
			So(err, ShouldBeNil)
			p.Skills["Vision"] = 1

			Convey("Then the stored record is unaffected", func() {
				again, err := store.Get(ctx, "alpha")
				So(err, ShouldBeNil)
				So(again.Skill("Vision"), ShouldEqual, 70)
			})
		})
	})
}
