package repository

import (
	"github.com/logicshrey/Learnopolis-v2/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

// CourseFilter 课程搜索条件
type CourseFilter struct {
	Query      string
	Difficulty string
	Subject    string
	Sort       string // popular | newest | rating
	Page       int
	Limit      int
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Modules", func(db *gorm.DB) *gorm.DB {
		return db.Order("course_modules.order ASC")
	}).First(&course, id).Error
	return &course, err
}

// FindAll 返回完整目录（含模块），推荐引擎与学习路径的输入
func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Modules", func(db *gorm.DB) *gorm.DB {
		return db.Order("course_modules.order ASC")
	}).Order("id ASC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Search(f CourseFilter) ([]model.Course, int64, error) {
	query := r.DB.Model(&model.Course{})

	if f.Query != "" {
		like := "%" + f.Query + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if f.Difficulty != "" {
		query = query.Where("difficulty = ?", f.Difficulty)
	}
	if f.Subject != "" {
		// subjects 为JSON数组
		query = query.Where("JSON_CONTAINS(subjects, JSON_QUOTE(?))", f.Subject)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.Sort {
	case "newest":
		query = query.Order("created_at DESC")
	case "rating":
		query = query.Order("average_rating DESC")
	default:
		query = query.Order("enrollment_count DESC")
	}

	if f.Limit <= 0 {
		f.Limit = 12
	}
	if f.Page <= 0 {
		f.Page = 1
	}

	var courses []model.Course
	err := query.Offset((f.Page - 1) * f.Limit).Limit(f.Limit).Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) FindFeatured(limit int) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Order("enrollment_count DESC").Limit(limit).Find(&courses).Error
	return courses, err
}

// IncrementEnrollment 报名时原子自增热度
func (r *CourseRepository) IncrementEnrollment(courseID uint) error {
	return r.DB.Model(&model.Course{}).
		Where("id = ?", courseID).
		Update("enrollment_count", gorm.Expr("enrollment_count + 1")).
		Error
}
