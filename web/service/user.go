package service

import (
	"strings"

	"github.com/druglens/druglens/database"
	"github.com/druglens/druglens/database/model"
	"github.com/druglens/druglens/logger"
	"github.com/druglens/druglens/util/crypto"
)

type UserService struct{}

// Signup stores a new user with a bcrypt hash of password.
func (s *UserService) Signup(email string, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrEmptyCredentials
	}
	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	db := database.GetDB()
	user := &model.User{
		Email:    email,
		Password: hashedPassword,
	}
	if err := db.Create(user).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

// CheckUser returns the user matching email and password, or nil.
func (s *UserService) CheckUser(email string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", strings.TrimSpace(email)).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}
	return user
}
