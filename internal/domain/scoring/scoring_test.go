package scoring_test

import (
	"math"
	"testing"

	"github.com/namathieu/lineup/internal/domain/model"
	scoring "github.com/namathieu/lineup/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDiminishingReturns(t *testing.T) {
	Convey("Given the diminishing-returns transform", t, func() {
		Convey("Then it is the identity up to the first knee", func() {
			So(scoring.DiminishingReturns(0), ShouldEqual, 0)
			So(scoring.DiminishingReturns(35), ShouldEqual, 35)
			So(scoring.DiminishingReturns(70), ShouldEqual, 70)
		})

		Convey("Then it compresses at 0.8x between the knees", func() {
			So(scoring.DiminishingReturns(71), ShouldAlmostEqual, 70.8)
			So(scoring.DiminishingReturns(80), ShouldAlmostEqual, 78)
			So(scoring.DiminishingReturns(85), ShouldAlmostEqual, 82)
		})

		Convey("Then it compresses at 0.6x above the second knee", func() {
			So(scoring.DiminishingReturns(90), ShouldAlmostEqual, 85)
			So(scoring.DiminishingReturns(95), ShouldAlmostEqual, 88)
		})

		Convey("Then a perfect raw value saturates below 100", func() {
			So(scoring.DiminishingReturns(100), ShouldAlmostEqual, 91)
		})

		Convey("Then it is strictly increasing over the whole range", func() {
			for v := 1; v <= 100; v++ {
				So(scoring.DiminishingReturns(v), ShouldBeGreaterThan, scoring.DiminishingReturns(v-1))
			}
		})
	})
}

func TestAgeMultiplier(t *testing.T) {
	Convey("Given the age multiplier curve", t, func() {
		Convey("Then prime years score full value", func() {
			for age := 18; age <= 22; age++ {
				So(scoring.AgeMultiplier(age), ShouldEqual, 1.0)
			}
		})

		Convey("Then the multiplier steps down with age", func() {
			So(scoring.AgeMultiplier(23), ShouldEqual, 0.98)
			So(scoring.AgeMultiplier(25), ShouldEqual, 0.98)
			So(scoring.AgeMultiplier(26), ShouldEqual, 0.95)
			So(scoring.AgeMultiplier(28), ShouldEqual, 0.95)
			So(scoring.AgeMultiplier(29), ShouldEqual, 0.88)
		})

		Convey("Then under-18 ranks above over-28", func() {
			// The curve is deliberately not monotone: young prospects
			// keep more value than veterans.
			So(scoring.AgeMultiplier(17), ShouldEqual, 0.90)
			So(scoring.AgeMultiplier(17), ShouldBeGreaterThan, scoring.AgeMultiplier(29))
		})

		Convey("Then out-of-range ages still bucket cleanly", func() {
			So(scoring.AgeMultiplier(0), ShouldEqual, 0.90)
			So(scoring.AgeMultiplier(99), ShouldEqual, 0.88)
		})
	})
}

func TestFitScorer_RoleFits(t *testing.T) {
	Convey("Given a scorer over the built-in catalog", t, func() {
		scorer := scoring.NewFitScorer()

		Convey("When scoring a player with flat primary skills in prime age", func() {
			p := model.Player{
				Name: "Flat",
				Age:  20,
				Skills: map[string]int{
					"Bravery": 60, "Composure": 60, "Concentration": 60,
				},
			}

			Convey("Then the Top Laner fit is exactly the primary coverage", func() {
				// No bonus (below thresholds), no secondary skills held.
				So(scorer.RoleFit(p, "Top Laner"), ShouldAlmostEqual, 60.0)
			})

			Convey("And the age multiplier scales that base", func() {
				p.Age = 25
				So(scorer.RoleFit(p, "Top Laner"), ShouldAlmostEqual, 58.8)
				p.Age = 30
				So(scorer.RoleFit(p, "Top Laner"), ShouldAlmostEqual, 52.8)
				p.Age = 17
				So(scorer.RoleFit(p, "Top Laner"), ShouldAlmostEqual, 54.0)
			})
		})

		Convey("When scoring an elite Bot Laner", func() {
			p := model.Player{
				Name:   "Ace",
				Age:    20,
				Skills: map[string]int{"Accuracy": 95, "Dexterity": 95},
			}

			Convey("Then bonuses push the fit to the 100 cap", func() {
				// Base 88 from compressed primaries plus the 20-point
				// threshold bonus overshoots and clamps.
				So(scorer.RoleFit(p, "Bot Laner"), ShouldEqual, 100.0)
			})
		})

		Convey("When the player holds secondary skills", func() {
			p := model.Player{
				Name: "Rounded",
				Age:  20,
				Skills: map[string]int{
					"Bravery": 60, "Composure": 60, "Concentration": 60,
					"Communication": 40, "Vision": 40,
				},
			}

			Convey("Then the secondary bonus is added on top", func() {
				// 60 base + 40% secondary coverage of the 15-point bonus.
				So(scorer.RoleFit(p, "Top Laner"), ShouldAlmostEqual, 66.0)
			})
		})

		Convey("When scoring a player with no recorded skills", func() {
			p := model.Player{Name: "Blank", Age: 20, Skills: map[string]int{}}
			fits := scorer.RoleFits(p)

			Convey("Then every role scores zero", func() {
				So(len(fits), ShouldEqual, 5)
				for _, score := range fits {
					So(score, ShouldEqual, 0)
				}
			})
		})

		Convey("When scoring arbitrary players", func() {
			players := []model.Player{
				{Name: "a", Age: 14, Skills: map[string]int{"Vision": 100, "Teamwork": 100, "Accuracy": 3}},
				{Name: "b", Age: 45, Skills: map[string]int{"Bravery": 88, "Flair": 12, "Memory": 77}},
				{Name: "c", Age: 21, Skills: map[string]int{}},
			}

			Convey("Then every fit stays within [0,100]", func() {
				for _, p := range players {
					for _, score := range scorer.RoleFits(p) {
						So(score, ShouldBeGreaterThanOrEqualTo, 0)
						So(score, ShouldBeLessThanOrEqualTo, 100)
					}
				}
			})

			Convey("And scores are rounded to two decimals", func() {
				for _, p := range players {
					for _, score := range scorer.RoleFits(p) {
						scaled := score * 100
						So(scaled, ShouldAlmostEqual, math.Round(scaled))
					}
				}
			})

			Convey("And repeated scoring is deterministic", func() {
				for _, p := range players {
					first := scorer.RoleFits(p)
					second := scorer.RoleFits(p)
					So(second, ShouldResemble, first)
				}
			})
		})

		Convey("When asking for an unknown role", func() {
			p := model.Player{Name: "x", Age: 20, Skills: map[string]int{"Vision": 90}}

			Convey("Then the fit is zero", func() {
				So(scorer.RoleFit(p, "Coach"), ShouldEqual, 0)
			})
		})
	})
}

func TestBestRole(t *testing.T) {
	Convey("Given a fit map", t, func() {
		Convey("When one role dominates", func() {
			role, score := scoring.BestRole(map[string]float64{"Jungler": 62.5, "Support": 81.2})

			Convey("Then it is returned with its score", func() {
				So(role, ShouldEqual, "Support")
				So(score, ShouldEqual, 81.2)
			})
		})

		Convey("When scores tie", func() {
			role, _ := scoring.BestRole(map[string]float64{"Support": 70, "Jungler": 70})

			Convey("Then the lexicographically smaller role wins", func() {
				So(role, ShouldEqual, "Jungler")
			})
		})

		Convey("When the map is empty", func() {
			role, score := scoring.BestRole(nil)

			Convey("Then it returns a zero result", func() {
				So(role, ShouldEqual, "")
				So(score, ShouldEqual, 0)
			})
		})
	})
}
