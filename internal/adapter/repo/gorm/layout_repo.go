package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"craftatlas/internal/app/ports"
	"craftatlas/internal/domain/layout"

	"gorm.io/gorm"
)

type LayoutRepo struct {
	db *gorm.DB
}

func NewLayoutRepo(db *gorm.DB) LayoutRepo {
	return LayoutRepo{db: db}
}

func (r LayoutRepo) Save(ctx context.Context, record ports.LayoutRecord) error {
	slots, err := json.Marshal(record.Grid.Slots)
	if err != nil {
		return fmt.Errorf("marshal layout slots: %w", err)
	}
	m := Layout{
		Name:      record.Name,
		Rows:      int32(record.Grid.Rows),
		Cols:      int32(record.Grid.Cols),
		Slots:     string(slots),
		UpdatedAt: record.UpdatedAt,
	}
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r LayoutRepo) GetByName(ctx context.Context, name string) (ports.LayoutRecord, error) {
	var m Layout
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.LayoutRecord{}, ports.ErrNotFound
		}
		return ports.LayoutRecord{}, err
	}
	return toLayoutRecord(m)
}

func (r LayoutRepo) List(ctx context.Context) ([]ports.LayoutRecord, error) {
	var rows []Layout
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.LayoutRecord, 0, len(rows))
	for _, m := range rows {
		record, err := toLayoutRecord(m)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func (r LayoutRepo) Delete(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).Where("name = ?", name).Delete(&Layout{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func toLayoutRecord(m Layout) (ports.LayoutRecord, error) {
	var slots []layout.Slot
	if m.Slots != "" {
		if err := json.Unmarshal([]byte(m.Slots), &slots); err != nil {
			return ports.LayoutRecord{}, fmt.Errorf("unmarshal layout %s slots: %w", m.Name, err)
		}
	}
	return ports.LayoutRecord{
		Name:      m.Name,
		Grid:      layout.Grid{Rows: int(m.Rows), Cols: int(m.Cols), Slots: slots},
		UpdatedAt: m.UpdatedAt,
	}, nil
}
