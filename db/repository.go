package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CheckRepository stores the history of version checks.
type CheckRepository interface {
	Add(ctx context.Context, c *Check) error
	// List returns the newest checks first; limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]Check, error)
	Clear(ctx context.Context) error
}

// SettingRepository stores remembered key/value settings.
type SettingRepository interface {
	// Get returns "", false when key was never stored.
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}

type gormCheckRepo struct{ db *gorm.DB }

type gormSettingRepo struct{ db *gorm.DB }

// NewCheckRepository creates a CheckRepository. Accepts *gorm.DB to avoid global access.
func NewCheckRepository(db *gorm.DB) CheckRepository { return &gormCheckRepo{db: db} }

// NewSettingRepository creates a SettingRepository. Accepts *gorm.DB to avoid global access.
func NewSettingRepository(db *gorm.DB) SettingRepository { return &gormSettingRepo{db: db} }

func (r *gormCheckRepo) Add(ctx context.Context, c *Check) error {
	if r.db == nil {
		return fmt.Errorf("repository not initialized")
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gormCheckRepo) List(ctx context.Context, limit int) ([]Check, error) {
	if r.db == nil {
		return nil, fmt.Errorf("repository not initialized")
	}
	q := r.db.WithContext(ctx).Order("created_at desc").Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var checks []Check
	if err := q.Find(&checks).Error; err != nil {
		return nil, err
	}
	return checks, nil
}

func (r *gormCheckRepo) Clear(ctx context.Context) error {
	if r.db == nil {
		return fmt.Errorf("repository not initialized")
	}
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Check{}).Error
}

func (r *gormSettingRepo) Get(ctx context.Context, key string) (string, bool, error) {
	if r.db == nil {
		return "", false, fmt.Errorf("repository not initialized")
	}
	var s Setting
	err := r.db.WithContext(ctx).First(&s, "name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return s.Value, true, nil
}

func (r *gormSettingRepo) Put(ctx context.Context, key, value string) error {
	if r.db == nil {
		return fmt.Errorf("repository not initialized")
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Setting{Name: key, Value: value}).Error
}
