package service

import (
	"fmt"
	"sort"

	"github.com/logicshrey/Learnopolis-v2/internal/model"
	"github.com/logicshrey/Learnopolis-v2/internal/repository"
)

// 每门课程预估2周
const weeksPerCourse = 2

// 一条学习路径至少需要凑齐3门课程
const minPathCourses = 3

// LearningPath 按模板从课程目录拼装出的学习路径
type LearningPath struct {
	Title                   string         `json:"title"`
	Description             string         `json:"description"`
	Courses                 []model.Course `json:"courses"`
	EstimatedTimeToComplete string         `json:"estimatedTimeToComplete"`
	SkillsGained            []string       `json:"skillsGained"`
}

type pathTemplate struct {
	ID               string
	Title            string
	Description      string
	RequiredSubjects []string
	SkillsGained     []string
}

// 固定路径模板，声明顺序即输出顺序
var pathTemplates = []pathTemplate{
	{
		ID:               "web_development",
		Title:            "Full-Stack Web Development",
		Description:      "Master the art of building web applications from front to back",
		RequiredSubjects: []string{"Web Development", "Computer Science", "UI/UX"},
		SkillsGained:     []string{"HTML/CSS", "JavaScript", "React", "Node.js", "Databases"},
	},
	{
		ID:               "data_science",
		Title:            "Data Science & Machine Learning",
		Description:      "Learn to analyze data and build predictive models",
		RequiredSubjects: []string{"Data Science", "AI", "Computer Science", "Statistics"},
		SkillsGained:     []string{"Python", "Statistics", "Machine Learning", "Data Visualization"},
	},
	{
		ID:               "robotics",
		Title:            "Robotics & Automation",
		Description:      "Build and program robots for the future",
		RequiredSubjects: []string{"Robotics", "Mechanical Engineering", "Electronics"},
		SkillsGained:     []string{"Sensors", "Actuators", "Control Systems", "Programming"},
	},
	{
		ID:               "renewable_energy",
		Title:            "Renewable Energy Systems",
		Description:      "Design and implement sustainable energy solutions",
		RequiredSubjects: []string{"Energy", "Environmental Engineering", "Electrical Engineering"},
		SkillsGained:     []string{"Solar Energy", "Wind Power", "Energy Storage", "Sustainability"},
	},
	{
		ID:               "cybersecurity",
		Title:            "Cybersecurity Professional",
		Description:      "Protect systems and networks from digital threats",
		RequiredSubjects: []string{"Cybersecurity", "Computer Science", "Networking"},
		SkillsGained:     []string{"Network Security", "Ethical Hacking", "Cryptography", "Security Analysis"},
	},
	{
		ID:               "blockchain",
		Title:            "Blockchain Developer",
		Description:      "Build decentralized applications and smart contracts",
		RequiredSubjects: []string{"Blockchain", "Computer Science", "Cryptography"},
		SkillsGained:     []string{"Smart Contracts", "Cryptocurrency", "Distributed Systems", "Web3"},
	},
	{
		ID:               "game_development",
		Title:            "Game Development",
		Description:      "Create engaging and immersive gaming experiences",
		RequiredSubjects: []string{"Game Development", "Computer Science", "Design"},
		SkillsGained:     []string{"Unity", "C#", "Game Design", "3D Modeling", "Animation"},
	},
	{
		ID:               "cloud_computing",
		Title:            "Cloud Solutions Architect",
		Description:      "Design and implement scalable cloud infrastructure",
		RequiredSubjects: []string{"Cloud Computing", "DevOps", "Computer Science"},
		SkillsGained:     []string{"AWS", "Azure", "Infrastructure as Code", "Containerization", "Microservices"},
	},
}

type LearningPathService struct {
	CourseRepo *repository.CourseRepository
}

func NewLearningPathService(courseRepo *repository.CourseRepository) *LearningPathService {
	return &LearningPathService{CourseRepo: courseRepo}
}

// GeneratePaths 按模板把课程目录拼装成学习路径。
// 每个模板逐难度、逐学科各取第一门匹配课程；凑不够3门的模板静默跳过。
func GeneratePaths(catalog []model.Course) []LearningPath {
	coursesBySubject := make(map[string][]model.Course)
	for _, course := range catalog {
		for _, subject := range course.Subjects {
			coursesBySubject[subject] = append(coursesBySubject[subject], course)
		}
	}

	difficulties := []model.CourseDifficulty{
		model.DifficultyBeginner,
		model.DifficultyIntermediate,
		model.DifficultyAdvanced,
	}

	var paths []LearningPath
	for _, tpl := range pathTemplates {
		var pathCourses []model.Course
		for _, difficulty := range difficulties {
			for _, subject := range tpl.RequiredSubjects {
				for _, course := range coursesBySubject[subject] {
					if course.Difficulty == difficulty {
						pathCourses = append(pathCourses, course)
						break
					}
				}
			}
		}

		if len(pathCourses) < minPathCourses {
			continue
		}

		sort.SliceStable(pathCourses, func(i, j int) bool {
			return pathCourses[i].Difficulty.Tier() < pathCourses[j].Difficulty.Tier()
		})

		paths = append(paths, LearningPath{
			Title:                   tpl.Title,
			Description:             tpl.Description,
			Courses:                 pathCourses,
			EstimatedTimeToComplete: fmt.Sprintf("%d weeks", len(pathCourses)*weeksPerCourse),
			SkillsGained:            tpl.SkillsGained,
		})
	}

	return paths
}

// GetLearningPaths 基于当前课程目录生成路径列表
func (s *LearningPathService) GetLearningPaths() ([]LearningPath, error) {
	catalog, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return GeneratePaths(catalog), nil
}
