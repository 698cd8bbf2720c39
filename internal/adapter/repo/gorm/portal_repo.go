package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"craftatlas/internal/app/ports"

	"gorm.io/gorm"
)

type PortalRepo struct {
	db *gorm.DB
}

func NewPortalRepo(db *gorm.DB) PortalRepo {
	return PortalRepo{db: db}
}

func (r PortalRepo) Save(ctx context.Context, record ports.PortalRecord) error {
	tags, err := json.Marshal(record.Tags)
	if err != nil {
		return fmt.Errorf("marshal portal tags: %w", err)
	}
	m := Portal{
		ID:      record.ID,
		Name:    record.Name,
		Galaxy:  record.Galaxy,
		Address: record.Address,
		Tags:    string(tags),
		Notes:   record.Notes,
	}
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r PortalRepo) GetByID(ctx context.Context, id string) (ports.PortalRecord, error) {
	var m Portal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.PortalRecord{}, ports.ErrNotFound
		}
		return ports.PortalRecord{}, err
	}
	return toPortalRecord(m)
}

func (r PortalRepo) List(ctx context.Context) ([]ports.PortalRecord, error) {
	var rows []Portal
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.PortalRecord, 0, len(rows))
	for _, m := range rows {
		record, err := toPortalRecord(m)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func (r PortalRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Portal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func toPortalRecord(m Portal) (ports.PortalRecord, error) {
	var tags []string
	if m.Tags != "" {
		if err := json.Unmarshal([]byte(m.Tags), &tags); err != nil {
			return ports.PortalRecord{}, fmt.Errorf("unmarshal portal %s tags: %w", m.ID, err)
		}
	}
	return ports.PortalRecord{
		ID:      m.ID,
		Name:    m.Name,
		Galaxy:  m.Galaxy,
		Address: m.Address,
		Tags:    tags,
		Notes:   m.Notes,
	}, nil
}
