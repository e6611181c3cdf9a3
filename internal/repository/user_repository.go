package repository

import (
	"codelearn_backend/internal/model"
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateAvatar(userID uint, url string) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).Update("avatar", url).Error
}

func (r *UserRepository) TouchLastLogin(userID uint) error {
	now := time.Now()
	return r.DB.Model(&model.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"last_login": now, "last_seen": now}).Error
}

func (r *UserRepository) TouchLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).
		Update("last_seen", time.Now()).Error
}

// TopByPoints 按积分降序取前 limit 名，积分相同按注册先后
func (r *UserRepository) TopByPoints(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("points DESC, created_at ASC").Limit(limit).Find(&users).Error
	return users, err
}

// CountWithMorePoints 积分严格高于 points 的用户数，用于算名次
func (r *UserRepository) CountWithMorePoints(points int) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("points > ?", points).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Count(&count).Error
	return count, err
}
