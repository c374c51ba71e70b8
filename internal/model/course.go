package model

type CourseDifficulty string

const (
	DifficultyBeginner     CourseDifficulty = "beginner"
	DifficultyIntermediate CourseDifficulty = "intermediate"
	DifficultyAdvanced     CourseDifficulty = "advanced"
)

// Tier 将难度映射到 1-3 的整数层级，未知难度按中级处理
func (d CourseDifficulty) Tier() int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	}
	return 2
}

// swagger:model Course
type Course struct {
	BaseModel
	Title           string           `gorm:"size:255;not null" json:"title"`
	Description     string           `gorm:"type:text" json:"description"`
	Difficulty      CourseDifficulty `gorm:"type:enum('beginner','intermediate','advanced');not null;index" json:"difficulty"`
	Subjects        []string         `gorm:"type:json;serializer:json" json:"subjects"`
	EnrollmentCount int              `gorm:"default:0" json:"enrollmentCount"`
	AverageRating   float64          `gorm:"default:0" json:"averageRating"`
	Modules         []CourseModule   `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model CourseModule
type CourseModule struct {
	BaseModel
	CourseID uint           `gorm:"index;type:bigint unsigned" json:"courseId"`
	Title    string         `gorm:"size:255;not null" json:"title"`
	Content  string         `gorm:"type:longtext" json:"content"`
	Points   int            `gorm:"default:100" json:"points"`
	Order    int            `gorm:"default:0" json:"order"`
	Quiz     []QuizQuestion `gorm:"type:json;serializer:json" json:"quiz"`
}

func (CourseModule) TableName() string {
	return "course_modules"
}

// QuizQuestion 以JSON形式内嵌在模块中，不单独建表
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}
