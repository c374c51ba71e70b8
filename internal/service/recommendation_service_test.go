package service_test

import (
	"testing"

	"github.com/logicshrey/Learnopolis-v2/internal/model"
	service "github.com/logicshrey/Learnopolis-v2/internal/service"
	. "github.com/smartystreets/goconvey/convey"
)

func course(id uint, title string, difficulty model.CourseDifficulty, enrollment int, subjects ...string) model.Course {
	c := model.Course{
		Title:           title,
		Difficulty:      difficulty,
		Subjects:        subjects,
		EnrollmentCount: enrollment,
	}
	c.ID = id
	return c
}

func TestBuildUserProfile(t *testing.T) {
	Convey("Given a user with mixed learning history", t, func() {
		ai := course(1, "Intro to AI", model.DifficultyBeginner, 100, "AI")
		ai.Modules = []model.CourseModule{{Title: "M1"}, {Title: "M2"}}
		web := course(2, "Web Basics", model.DifficultyIntermediate, 50, "Web Development")
		web.Modules = []model.CourseModule{{Title: "M1"}, {Title: "M2"}}

		user := &model.User{Level: 3}
		history := []model.UserProgress{
			{
				UserID:           7,
				CourseID:         1,
				Course:           &ai,
				Completed:        true,
				CompletedModules: []int{0, 1},
				QuizScores:       map[int]float64{0: 90, 1: 70},
			},
			{
				UserID:           7,
				CourseID:         2,
				Course:           &web,
				CompletedModules: []int{0},
			},
		}

		Convey("When building the profile", func() {
			profile := service.BuildUserProfile(user, history, nil)

			Convey("Then completed courses weigh double", func() {
				So(profile.SubjectWeights["AI"], ShouldEqual, 2)
				So(profile.SubjectWeights["Web Development"], ShouldEqual, 1)
				So(profile.DifficultyWeights[model.DifficultyBeginner], ShouldEqual, 2)
				So(profile.DifficultyWeights[model.DifficultyIntermediate], ShouldEqual, 1)
			})

			Convey("And averages come from all entries", func() {
				// (2/2 + 1/2) / 2
				So(profile.AvgCompletionRate, ShouldAlmostEqual, 0.75)
				So(profile.AvgQuizScore, ShouldAlmostEqual, 80)
			})

			Convey("And enrollment sets track both courses", func() {
				So(profile.EnrolledCourseIDs, ShouldContainKey, uint(1))
				So(profile.EnrolledCourseIDs, ShouldContainKey, uint(2))
				So(profile.CompletedCourseIDs, ShouldContainKey, uint(1))
				So(profile.CompletedCourseIDs, ShouldNotContainKey, uint(2))
				So(profile.Level, ShouldEqual, 3)
				So(profile.HistoryCount, ShouldEqual, 2)
			})
		})

		Convey("When the history references a course only by ID", func() {
			history[0].Course = nil
			catalog := map[uint]*model.Course{1: &ai}
			profile := service.BuildUserProfile(user, history, catalog)

			Convey("Then the catalog lookup still contributes weights", func() {
				So(profile.SubjectWeights["AI"], ShouldEqual, 2)
			})
		})
	})

	Convey("Given identical inputs", t, func() {
		ai := course(1, "Intro to AI", model.DifficultyBeginner, 100, "AI")
		ai.Modules = []model.CourseModule{{Title: "M1"}, {Title: "M2"}}
		history := []model.UserProgress{{
			UserID:           7,
			CourseID:         1,
			Course:           &ai,
			Completed:        true,
			CompletedModules: []int{0},
			QuizScores:       map[int]float64{0: 90},
		}}
		user := &model.User{Level: 2}

		Convey("Then building the profile twice gives identical results", func() {
			first := service.BuildUserProfile(user, history, nil)
			second := service.BuildUserProfile(user, history, nil)
			So(second.SubjectWeights, ShouldResemble, first.SubjectWeights)
			So(second.DifficultyWeights, ShouldResemble, first.DifficultyWeights)
			So(second.AvgCompletionRate, ShouldEqual, first.AvgCompletionRate)
			So(second.AvgQuizScore, ShouldEqual, first.AvgQuizScore)
		})
	})

	Convey("Given an empty history", t, func() {
		profile := service.BuildUserProfile(&model.User{Level: 1}, nil, nil)

		Convey("Then averages stay zero instead of dividing by zero", func() {
			So(profile.AvgCompletionRate, ShouldEqual, 0)
			So(profile.AvgQuizScore, ShouldEqual, 0)
			So(profile.HistoryCount, ShouldEqual, 0)
		})
	})
}

func TestRecommendColdStart(t *testing.T) {
	Convey("Given a user with no learning history", t, func() {
		catalog := []model.Course{
			course(1, "A", model.DifficultyBeginner, 50, "AI"),
			course(2, "B", model.DifficultyBeginner, 300, "Web Development"),
			course(3, "C", model.DifficultyAdvanced, 120, "Robotics"),
		}
		profile := service.BuildUserProfile(&model.User{Level: 1}, nil, nil)

		Convey("When recommending", func() {
			result := service.Recommend(profile, catalog, nil)

			Convey("Then courses come back ordered by enrollment", func() {
				So(len(result), ShouldEqual, 3)
				So(result[0].Course.Title, ShouldEqual, "B")
				So(result[1].Course.Title, ShouldEqual, "C")
				So(result[2].Course.Title, ShouldEqual, "A")
			})

			Convey("And every reason marks them as popular picks", func() {
				for _, r := range result {
					So(r.Reason, ShouldEqual, "Popular course for beginners")
				}
			})
		})

		Convey("When some courses are excluded", func() {
			exclude := map[uint]struct{}{2: {}}
			result := service.Recommend(profile, catalog, exclude)

			Convey("Then excluded courses never appear", func() {
				So(len(result), ShouldEqual, 2)
				for _, r := range result {
					So(r.Course.ID, ShouldNotEqual, uint(2))
				}
			})
		})
	})
}

func TestRecommendScoring(t *testing.T) {
	Convey("Given a struggling beginner interested in AI", t, func() {
		profile := &service.UserProfile{
			SubjectWeights:     map[string]float64{"AI": 4},
			DifficultyWeights:  map[model.CourseDifficulty]float64{},
			AvgCompletionRate:  0.4,
			AvgQuizScore:       60,
			Level:              1,
			CompletedCourseIDs: map[uint]struct{}{},
			EnrolledCourseIDs:  map[uint]struct{}{},
			HistoryCount:       1,
		}
		target := course(1, "AI Fundamentals", model.DifficultyBeginner, 100, "AI")

		Convey("When scoring a matching beginner course", func() {
			result := service.Recommend(profile, []model.Course{target}, nil)

			Convey("Then the components add up", func() {
				// 亲和2 + 难度契合3 + 偏好0 + 节奏2 + 热度1 + 新学科0
				So(len(result), ShouldEqual, 1)
				So(result[0].Score, ShouldAlmostEqual, 8.0)
			})
		})

		Convey("When the subject affinity would exceed its cap", func() {
			profile.SubjectWeights["AI"] = 40
			capped := service.Recommend(profile, []model.Course{target}, nil)

			profile.SubjectWeights["AI"] = 400
			beyond := service.Recommend(profile, []model.Course{target}, nil)

			Convey("Then the affinity contribution stays capped at 5", func() {
				So(capped[0].Score, ShouldAlmostEqual, beyond[0].Score)
				So(capped[0].Score, ShouldAlmostEqual, 11.0)
			})
		})

		Convey("When the course covers unfamiliar subjects", func() {
			novel := course(2, "Quantum Basics", model.DifficultyBeginner, 0, "Quantum", "Photonics")
			result := service.Recommend(profile, []model.Course{novel}, nil)

			Convey("Then each new subject adds half a point", func() {
				// 亲和0 + 难度契合3 + 偏好0 + 节奏2 + 热度0 + 新学科1
				So(result[0].Score, ShouldAlmostEqual, 6.0)
			})
		})
	})

	Convey("Given a high performer deep into web development", t, func() {
		profile := &service.UserProfile{
			SubjectWeights:     map[string]float64{"Web Development": 4},
			DifficultyWeights:  map[model.CourseDifficulty]float64{model.DifficultyBeginner: 2},
			AvgCompletionRate:  0.9,
			AvgQuizScore:       85,
			Level:              6,
			CompletedCourseIDs: map[uint]struct{}{},
			EnrolledCourseIDs:  map[uint]struct{}{},
			HistoryCount:       2,
		}

		Convey("When scoring an advanced course in their subject", func() {
			advanced := course(1, "Scalable Frontends", model.DifficultyAdvanced, 150, "Web Development")
			result := service.Recommend(profile, []model.Course{advanced}, nil)

			Convey("Then the score lands at exactly 8", func() {
				// 亲和2 + 难度契合3 + 偏好0 + 节奏2 + 热度1 + 新学科0
				So(result[0].Score, ShouldAlmostEqual, 8.0)
			})
		})
	})

	Convey("Given a fast high-scoring learner", t, func() {
		profile := &service.UserProfile{
			SubjectWeights:     map[string]float64{"AI": 2},
			DifficultyWeights:  map[model.CourseDifficulty]float64{model.DifficultyAdvanced: 6},
			AvgCompletionRate:  0.9,
			AvgQuizScore:       90,
			Level:              6,
			CompletedCourseIDs: map[uint]struct{}{},
			EnrolledCourseIDs:  map[uint]struct{}{},
			HistoryCount:       3,
		}

		Convey("When scoring an advanced course in a known subject", func() {
			advanced := course(1, "Deep Learning", model.DifficultyAdvanced, 500, "AI")
			result := service.Recommend(profile, []model.Course{advanced}, nil)

			Convey("Then the pace bonus favors the advanced course", func() {
				// 亲和1 + 难度契合3 + 偏好2(封顶) + 节奏2 + 热度1(封顶) + 新学科0
				So(result[0].Score, ShouldAlmostEqual, 9.0)
			})
		})
	})
}

func TestRecommendProperties(t *testing.T) {
	Convey("Given a large catalog and an active profile", t, func() {
		catalog := make([]model.Course, 0, 10)
		for i := uint(1); i <= 10; i++ {
			catalog = append(catalog, course(i, "Course", model.DifficultyBeginner, int(i*10), "AI"))
		}
		profile := &service.UserProfile{
			SubjectWeights:     map[string]float64{"AI": 2},
			DifficultyWeights:  map[model.CourseDifficulty]float64{},
			Level:              1,
			CompletedCourseIDs: map[uint]struct{}{},
			EnrolledCourseIDs:  map[uint]struct{}{},
			HistoryCount:       1,
		}

		Convey("Then at most 6 recommendations come back", func() {
			result := service.Recommend(profile, catalog, nil)
			So(len(result), ShouldEqual, 6)
		})

		Convey("Then scores never increase down the list", func() {
			result := service.Recommend(profile, catalog, nil)
			for i := 1; i < len(result); i++ {
				So(result[i].Score, ShouldBeLessThanOrEqualTo, result[i-1].Score)
			}
		})

		Convey("Then recommending twice gives identical results", func() {
			first := service.Recommend(profile, catalog, nil)
			second := service.Recommend(profile, catalog, nil)
			So(len(second), ShouldEqual, len(first))
			for i := range first {
				So(second[i].Course.ID, ShouldEqual, first[i].Course.ID)
				So(second[i].Score, ShouldAlmostEqual, first[i].Score)
			}
		})

		Convey("Then an empty catalog yields an empty result", func() {
			So(service.Recommend(profile, nil, nil), ShouldBeEmpty)
		})

		Convey("Then excluding everything yields an empty result", func() {
			exclude := make(map[uint]struct{})
			for _, c := range catalog {
				exclude[c.ID] = struct{}{}
			}
			So(service.Recommend(profile, catalog, exclude), ShouldBeEmpty)
		})
	})
}

func TestRecommendReasons(t *testing.T) {
	Convey("Given a profile with history", t, func() {
		profile := &service.UserProfile{
			SubjectWeights:     map[string]float64{"AI": 2, "Robotics": 1},
			DifficultyWeights:  map[model.CourseDifficulty]float64{},
			Level:              2,
			CompletedCourseIDs: map[uint]struct{}{},
			EnrolledCourseIDs:  map[uint]struct{}{},
			HistoryCount:       1,
		}

		Convey("Matching subjects win over everything else", func() {
			c := course(1, "AI", model.DifficultyBeginner, 500, "AI")
			result := service.Recommend(profile, []model.Course{c}, nil)
			So(result[0].Reason, ShouldEqual, "Based on your interest in AI")
		})

		Convey("A crowded course is highly rated", func() {
			c := course(1, "Energy", model.DifficultyAdvanced, 201, "Energy")
			result := service.Recommend(profile, []model.Course{c}, nil)
			So(result[0].Reason, ShouldEqual, "Highly rated by other students")
		})

		Convey("Beginner courses suit low-level users", func() {
			c := course(1, "Energy", model.DifficultyBeginner, 10, "Energy")
			result := service.Recommend(profile, []model.Course{c}, nil)
			So(result[0].Reason, ShouldEqual, "Great for your current level")
		})

		Convey("Intermediate courses match mid-level users", func() {
			profile.Level = 4
			c := course(1, "Energy", model.DifficultyIntermediate, 10, "Energy")
			result := service.Recommend(profile, []model.Course{c}, nil)
			So(result[0].Reason, ShouldEqual, "Matches your skill level")
		})

		Convey("Advanced courses challenge high-level users", func() {
			profile.Level = 6
			c := course(1, "Energy", model.DifficultyAdvanced, 10, "Energy")
			result := service.Recommend(profile, []model.Course{c}, nil)
			So(result[0].Reason, ShouldEqual, "Challenge yourself with advanced content")
		})

		Convey("Everything else falls back to exploration", func() {
			c := course(1, "Energy", model.DifficultyAdvanced, 10, "Energy")
			result := service.Recommend(profile, []model.Course{c}, nil)
			So(result[0].Reason, ShouldEqual, "Expand your knowledge in a new area")
		})
	})
}
