package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"craftatlas/internal/app/ports"
	"craftatlas/internal/domain/catalog"

	"gorm.io/gorm"
)

type RecipeOverrideRepo struct {
	db *gorm.DB
}

func NewRecipeOverrideRepo(db *gorm.DB) RecipeOverrideRepo {
	return RecipeOverrideRepo{db: db}
}

func (r RecipeOverrideRepo) Save(ctx context.Context, record ports.RecipeOverrideRecord) error {
	inputs, err := json.Marshal(record.Inputs)
	if err != nil {
		return fmt.Errorf("marshal override inputs: %w", err)
	}
	m := RecipeOverride{
		RecipeID:    record.RecipeID,
		Name:        record.Name,
		Quantity:    int32(record.Quantity),
		TimeSeconds: record.TimeSeconds,
		Inputs:      string(inputs),
		AppliedAt:   record.AppliedAt,
	}
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r RecipeOverrideRepo) List(ctx context.Context) ([]ports.RecipeOverrideRecord, error) {
	var rows []RecipeOverride
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.RecipeOverrideRecord, 0, len(rows))
	for _, m := range rows {
		var inputs []catalog.RecipeInput
		if m.Inputs != "" {
			if err := json.Unmarshal([]byte(m.Inputs), &inputs); err != nil {
				return nil, fmt.Errorf("unmarshal override %s inputs: %w", m.RecipeID, err)
			}
		}
		out = append(out, ports.RecipeOverrideRecord{
			RecipeID:    m.RecipeID,
			Name:        m.Name,
			Quantity:    int(m.Quantity),
			TimeSeconds: m.TimeSeconds,
			Inputs:      inputs,
			AppliedAt:   m.AppliedAt,
		})
	}
	return out, nil
}
