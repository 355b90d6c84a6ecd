package database

import (
	"fmt"

	"diabetes-predictor/internal/models"

	"gorm.io/gorm"
)

func AppendHistory(userID uint, inputData, result string) error {
	entry := models.HistoryEntry{
		UserID:    userID,
		InputData: inputData,
		Result:    result,
	}
	err := withConn(func(tx *gorm.DB) error {
		return tx.Create(&entry).Error
	})
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// ListHistory возвращает записи пользователя в порядке добавления.
func ListHistory(userID uint) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	err := withConn(func(tx *gorm.DB) error {
		return tx.Where("user_id = ?", userID).Order("id asc").Find(&entries).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}
