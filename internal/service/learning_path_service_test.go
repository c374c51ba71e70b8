package service_test

import (
	"testing"

	"github.com/logicshrey/Learnopolis-v2/internal/model"
	service "github.com/logicshrey/Learnopolis-v2/internal/service"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGeneratePaths(t *testing.T) {
	Convey("Given a catalog covering the web development track", t, func() {
		catalog := []model.Course{
			course(1, "HTML & CSS", model.DifficultyBeginner, 100, "Web Development"),
			course(2, "Algorithms", model.DifficultyIntermediate, 80, "Computer Science"),
			course(3, "Scalable Frontends", model.DifficultyAdvanced, 60, "Web Development"),
		}

		Convey("When generating paths", func() {
			paths := service.GeneratePaths(catalog)

			Convey("Then the full-stack path is assembled", func() {
				So(len(paths), ShouldEqual, 1)
				So(paths[0].Title, ShouldEqual, "Full-Stack Web Development")
				So(len(paths[0].Courses), ShouldEqual, 3)
			})

			Convey("And courses run from easy to hard", func() {
				tiers := paths[0].Courses
				for i := 1; i < len(tiers); i++ {
					So(tiers[i].Difficulty.Tier(), ShouldBeGreaterThanOrEqualTo, tiers[i-1].Difficulty.Tier())
				}
			})

			Convey("And the estimate counts two weeks per course", func() {
				So(paths[0].EstimatedTimeToComplete, ShouldEqual, "6 weeks")
			})

			Convey("And the template skills are carried over", func() {
				So(paths[0].SkillsGained, ShouldContain, "React")
			})
		})
	})

	Convey("Given a catalog with too few matching courses", t, func() {
		catalog := []model.Course{
			course(1, "HTML & CSS", model.DifficultyBeginner, 100, "Web Development"),
			course(2, "Scalable Frontends", model.DifficultyAdvanced, 60, "Web Development"),
		}

		Convey("Then no path with fewer than 3 courses is emitted", func() {
			So(service.GeneratePaths(catalog), ShouldBeEmpty)
		})
	})

	Convey("Given an empty catalog", t, func() {
		Convey("Then no paths are generated", func() {
			So(service.GeneratePaths(nil), ShouldBeEmpty)
		})
	})

	Convey("Given three AI courses across all difficulties", t, func() {
		catalog := []model.Course{
			course(1, "Applied ML", model.DifficultyIntermediate, 70, "AI"),
			course(2, "AI for Everyone", model.DifficultyBeginner, 120, "AI"),
			course(3, "Deep Learning", model.DifficultyAdvanced, 50, "AI"),
		}

		Convey("When generating paths", func() {
			paths := service.GeneratePaths(catalog)

			Convey("Then the data science track picks up all three in order", func() {
				So(len(paths), ShouldEqual, 1)
				So(paths[0].Title, ShouldEqual, "Data Science & Machine Learning")
				So(len(paths[0].Courses), ShouldEqual, 3)
				So(paths[0].Courses[0].Title, ShouldEqual, "AI for Everyone")
				So(paths[0].Courses[1].Title, ShouldEqual, "Applied ML")
				So(paths[0].Courses[2].Title, ShouldEqual, "Deep Learning")
				So(paths[0].EstimatedTimeToComplete, ShouldEqual, "6 weeks")
			})
		})
	})

	Convey("Given a catalog spanning several tracks", t, func() {
		catalog := []model.Course{
			course(1, "HTML & CSS", model.DifficultyBeginner, 100, "Web Development"),
			course(2, "Algorithms", model.DifficultyIntermediate, 80, "Computer Science"),
			course(3, "Scalable Frontends", model.DifficultyAdvanced, 60, "Web Development"),
			course(4, "Statistics 101", model.DifficultyBeginner, 90, "Statistics"),
			course(5, "Applied ML", model.DifficultyIntermediate, 70, "AI"),
			course(6, "Deep Learning", model.DifficultyAdvanced, 50, "Data Science"),
		}

		Convey("Then every qualifying template yields a path in declaration order", func() {
			paths := service.GeneratePaths(catalog)
			So(len(paths), ShouldBeGreaterThanOrEqualTo, 2)
			So(paths[0].Title, ShouldEqual, "Full-Stack Web Development")
			So(paths[1].Title, ShouldEqual, "Data Science & Machine Learning")
		})
	})
}
