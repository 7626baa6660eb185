package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrConflict      = errors.New("record already exists")
	ErrProtectedRole = errors.New("the Admin role cannot be changed or deleted")
)

type GormRepo struct {
	DB *gorm.DB
}

// keywordFilter applies a case-insensitive substring match on column.
// LOWER/LIKE instead of ILIKE so it behaves the same on the sqlite test DB.
func keywordFilter(q *gorm.DB, column, keyword string) *gorm.DB {
	kw := strings.TrimSpace(keyword)
	if kw == "" {
		return q
	}
	return q.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(kw)+"%")
}

// saveDetached persists the row without touching preloaded associations.
func (r *GormRepo) saveDetached(ctx context.Context, value any) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(value).Error
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
