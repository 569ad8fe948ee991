package service

import (
	"time"

	"github.com/druglens/druglens/database"
	"github.com/druglens/druglens/database/model"
)

type HistoryService struct{}

func (s *HistoryService) Record(userId int, medicineId int) error {
	h := &model.History{
		UserId:     userId,
		MedicineId: medicineId,
		SearchDate: time.Now().Format(model.SearchDateLayout),
	}
	return database.GetDB().Omit("User", "Medicine").Create(h).Error
}

// GetUserHistory returns userId's lookups in the order they happened.
func (s *HistoryService) GetUserHistory(userId int) ([]model.HistoryRecord, error) {
	records := make([]model.HistoryRecord, 0)
	err := database.GetDB().Table("history AS h").
		Select("m.name AS name, m.description AS description, h.search_date AS search_date").
		Joins("JOIN medicines m ON h.medicine_id = m.id").
		Where("h.user_id = ?", userId).
		Order("h.id").
		Scan(&records).
		Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *HistoryService) CountUserHistory(userId int) (int64, error) {
	var count int64
	err := database.GetDB().Model(model.History{}).Where("user_id = ?", userId).Count(&count).Error
	return count, err
}
