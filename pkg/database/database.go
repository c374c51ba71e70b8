package database

import (
	"fmt"
	"log"

	"github.com/logicshrey/Learnopolis-v2/internal/config"
	"github.com/logicshrey/Learnopolis-v2/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.CourseModule{},
		&model.UserProgress{},
		&model.Video{},
		&model.UserVideo{},
		&model.DailyChallenge{},
		&model.UserChallenge{},
		&model.Achievement{},
		&model.Feedback{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认课程目录（首次启动时插入，避免空目录导致推荐与学习路径无数据）
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count == 0 {
		defaultCourses := []model.Course{
			{
				Title:           "Introduction to Web Development",
				Description:     "Learn HTML, CSS and the basics of building pages for the web.",
				Difficulty:      model.DifficultyBeginner,
				Subjects:        []string{"Web Development", "Computer Science"},
				EnrollmentCount: 320,
				AverageRating:   4.6,
				Modules: []model.CourseModule{
					{Title: "HTML Fundamentals", Content: "Structure documents with semantic HTML.", Points: 100, Order: 1},
					{Title: "Styling with CSS", Content: "Layout and styling essentials.", Points: 100, Order: 2},
					{Title: "Your First Page", Content: "Build and publish a static page.", Points: 100, Order: 3},
				},
			},
			{
				Title:           "JavaScript Essentials",
				Description:     "Core JavaScript for interactive web applications.",
				Difficulty:      model.DifficultyIntermediate,
				Subjects:        []string{"Web Development", "Computer Science"},
				EnrollmentCount: 250,
				AverageRating:   4.5,
				Modules: []model.CourseModule{
					{Title: "Language Basics", Content: "Variables, functions and control flow.", Points: 100, Order: 1},
					{Title: "The DOM", Content: "Manipulating pages from script.", Points: 100, Order: 2},
					{Title: "Async Patterns", Content: "Promises and fetch.", Points: 100, Order: 3},
				},
			},
			{
				Title:           "Full-Stack Engineering",
				Description:     "Advanced patterns for building complete web applications.",
				Difficulty:      model.DifficultyAdvanced,
				Subjects:        []string{"Web Development", "Computer Science"},
				EnrollmentCount: 140,
				AverageRating:   4.7,
				Modules: []model.CourseModule{
					{Title: "API Design", Content: "REST and beyond.", Points: 100, Order: 1},
					{Title: "Persistence", Content: "Databases and ORMs.", Points: 100, Order: 2},
					{Title: "Deployment", Content: "Shipping to production.", Points: 100, Order: 3},
				},
			},
			{
				Title:           "Mathematics for Data Science",
				Description:     "Statistics and linear algebra foundations for analysis.",
				Difficulty:      model.DifficultyBeginner,
				Subjects:        []string{"Statistics", "Data Science"},
				EnrollmentCount: 210,
				AverageRating:   4.4,
				Modules: []model.CourseModule{
					{Title: "Descriptive Statistics", Content: "Mean, variance and distributions.", Points: 100, Order: 1},
					{Title: "Vectors and Matrices", Content: "Linear algebra essentials.", Points: 100, Order: 2},
					{Title: "Probability", Content: "Reasoning under uncertainty.", Points: 100, Order: 3},
				},
			},
			{
				Title:           "Python for Data Analysis",
				Description:     "Work with real datasets using Python.",
				Difficulty:      model.DifficultyIntermediate,
				Subjects:        []string{"Data Science", "Computer Science"},
				EnrollmentCount: 290,
				AverageRating:   4.8,
				Modules: []model.CourseModule{
					{Title: "Pandas", Content: "Dataframes and transformations.", Points: 100, Order: 1},
					{Title: "Visualization", Content: "Charts that communicate.", Points: 100, Order: 2},
					{Title: "A Complete Analysis", Content: "End-to-end case study.", Points: 100, Order: 3},
				},
			},
			{
				Title:           "Machine Learning Foundations",
				Description:     "Train and evaluate your first predictive models.",
				Difficulty:      model.DifficultyAdvanced,
				Subjects:        []string{"AI", "Data Science"},
				EnrollmentCount: 180,
				AverageRating:   4.9,
				Modules: []model.CourseModule{
					{Title: "Supervised Learning", Content: "Regression and classification.", Points: 100, Order: 1},
					{Title: "Model Evaluation", Content: "Metrics and validation.", Points: 100, Order: 2},
					{Title: "Pipelines", Content: "From notebook to product.", Points: 100, Order: 3},
				},
			},
			{
				Title:           "Robotics Fundamentals",
				Description:     "Sensors, actuators and control loops.",
				Difficulty:      model.DifficultyBeginner,
				Subjects:        []string{"Robotics", "Electronics"},
				EnrollmentCount: 130,
				AverageRating:   4.3,
				Modules: []model.CourseModule{
					{Title: "Sensing the World", Content: "Common sensors and readings.", Points: 100, Order: 1},
					{Title: "Actuation", Content: "Motors and servos.", Points: 100, Order: 2},
					{Title: "Feedback Control", Content: "Closing the loop.", Points: 100, Order: 3},
				},
			},
			{
				Title:           "Cybersecurity Basics",
				Description:     "Understand threats and protect systems.",
				Difficulty:      model.DifficultyBeginner,
				Subjects:        []string{"Cybersecurity", "Networking"},
				EnrollmentCount: 240,
				AverageRating:   4.5,
				Modules: []model.CourseModule{
					{Title: "Threat Landscape", Content: "Attackers and attack surfaces.", Points: 100, Order: 1},
					{Title: "Network Security", Content: "Firewalls and segmentation.", Points: 100, Order: 2},
					{Title: "Safe Practices", Content: "Hardening day to day.", Points: 100, Order: 3},
				},
			},
		}
		for i := range defaultCourses {
			db.Create(&defaultCourses[i])
		}
		log.Printf("Seeded %d default courses", len(defaultCourses))
	}

	return db, nil
}
