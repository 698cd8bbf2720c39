package gormrepo

import (
	"context"
	"errors"

	"craftatlas/internal/app/ports"

	"gorm.io/gorm"
)

type NoteRepo struct {
	db *gorm.DB
}

func NewNoteRepo(db *gorm.DB) NoteRepo {
	return NoteRepo{db: db}
}

func (r NoteRepo) Save(ctx context.Context, record ports.NoteRecord) error {
	m := Note{ID: record.ID, Title: record.Title, Body: record.Body, UpdatedAt: record.UpdatedAt}
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r NoteRepo) GetByID(ctx context.Context, id string) (ports.NoteRecord, error) {
	var m Note
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.NoteRecord{}, ports.ErrNotFound
		}
		return ports.NoteRecord{}, err
	}
	return ports.NoteRecord{ID: m.ID, Title: m.Title, Body: m.Body, UpdatedAt: m.UpdatedAt}, nil
}

func (r NoteRepo) List(ctx context.Context) ([]ports.NoteRecord, error) {
	var rows []Note
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.NoteRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, ports.NoteRecord{ID: m.ID, Title: m.Title, Body: m.Body, UpdatedAt: m.UpdatedAt})
	}
	return out, nil
}

func (r NoteRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Note{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
