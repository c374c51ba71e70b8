package repository

import (
	"time"

	"github.com/logicshrey/Learnopolis-v2/internal/model"

	"gorm.io/gorm"
)

type ChallengeRepository struct {
	DB *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{DB: db}
}

func (r *ChallengeRepository) FindByDate(date time.Time) (*model.DailyChallenge, error) {
	var challenge model.DailyChallenge
	err := r.DB.Where("date = ?", date).First(&challenge).Error
	return &challenge, err
}

func (r *ChallengeRepository) FindByID(id uint) (*model.DailyChallenge, error) {
	var challenge model.DailyChallenge
	err := r.DB.First(&challenge, id).Error
	return &challenge, err
}

func (r *ChallengeRepository) Create(challenge *model.DailyChallenge) error {
	return r.DB.Create(challenge).Error
}

func (r *ChallengeRepository) FindUserChallenge(userID, challengeID uint) (*model.UserChallenge, error) {
	var uc model.UserChallenge
	err := r.DB.Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		First(&uc).Error
	return &uc, err
}

func (r *ChallengeRepository) CreateUserChallenge(uc *model.UserChallenge) error {
	return r.DB.Create(uc).Error
}
