package service

import (
	"strings"

	"github.com/druglens/druglens/database"
	"github.com/druglens/druglens/database/model"
)

type MedicineService struct {
	historyService HistoryService
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *MedicineService) AddMedicine(m *model.Medicine) error {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return ErrEmptyMedicineName
	}
	m.Id = 0
	return database.GetDB().Create(m).Error
}

// FindByName returns the first medicine, by id, whose name contains query
// verbatim. Further matches are ignored; an empty query matches every row.
func (s *MedicineService) FindByName(query string) (*model.Medicine, error) {
	m := &model.Medicine{}
	err := database.GetDB().Model(model.Medicine{}).
		Where(`name LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(query)+"%").
		Order("id").
		First(m).
		Error
	if database.IsNotFound(err) {
		return nil, ErrMedicineNotFound
	} else if err != nil {
		return nil, err
	}
	return m, nil
}

// FindByBarcode returns the first medicine, by id, with exactly this barcode.
func (s *MedicineService) FindByBarcode(code string) (*model.Medicine, error) {
	if code == "" {
		return nil, ErrMedicineNotFound
	}
	m := &model.Medicine{}
	err := database.GetDB().Model(model.Medicine{}).
		Where("barcode = ?", code).
		Order("id").
		First(m).
		Error
	if database.IsNotFound(err) {
		return nil, ErrMedicineNotFound
	} else if err != nil {
		return nil, err
	}
	return m, nil
}

// Search looks a medicine up by name and records the hit in userId's history.
func (s *MedicineService) Search(userId int, query string) (*model.Medicine, error) {
	m, err := s.FindByName(query)
	if err != nil {
		return nil, err
	}
	if err := s.historyService.Record(userId, m.Id); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MedicineService) ExistsByName(name string) (bool, error) {
	var count int64
	err := database.GetDB().Model(model.Medicine{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}
