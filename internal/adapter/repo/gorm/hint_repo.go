package gormrepo

import (
	"context"
	"errors"

	"craftatlas/internal/app/ports"

	"gorm.io/gorm"
)

type HintRepo struct {
	db *gorm.DB
}

func NewHintRepo(db *gorm.DB) HintRepo {
	return HintRepo{db: db}
}

func (r HintRepo) Save(ctx context.Context, record ports.HintRecord) error {
	m := Hint{ID: record.ID, Title: record.Title, Body: record.Body, Category: record.Category}
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r HintRepo) GetByID(ctx context.Context, id string) (ports.HintRecord, error) {
	var m Hint
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.HintRecord{}, ports.ErrNotFound
		}
		return ports.HintRecord{}, err
	}
	return ports.HintRecord{ID: m.ID, Title: m.Title, Body: m.Body, Category: m.Category}, nil
}

func (r HintRepo) List(ctx context.Context) ([]ports.HintRecord, error) {
	var rows []Hint
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.HintRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, ports.HintRecord{ID: m.ID, Title: m.Title, Body: m.Body, Category: m.Category})
	}
	return out, nil
}

func (r HintRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Hint{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
