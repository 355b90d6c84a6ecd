package database

import (
	"errors"
	"fmt"

	"diabetes-predictor/internal/models"

	"gorm.io/gorm"
)

// CreateUser не проверяет занятость username.
func CreateUser(username, password string) (*models.User, error) {
	user := models.User{Username: username, Password: password}
	err := withConn(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// FindUser ищет первого пользователя с точным совпадением логина и пароля.
func FindUser(username, password string) (*models.User, error) {
	var user models.User
	err := withConn(func(tx *gorm.DB) error {
		return tx.Where("username = ? AND password = ?", username, password).
			Order("id asc").
			Take(&user).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}
