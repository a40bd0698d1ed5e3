package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is the pointer type of a model with a numeric primary key
type Record[T any] interface {
	*T
	GetID() uint
	SetID(id uint)
	TableName() string
}

// Table provides create/read/update/delete access to one entity table
type Table[T any, P Record[T]] struct {
	db *gorm.DB
}

func newTable[T any, P Record[T]](db *gorm.DB) *Table[T, P] {
	return &Table[T, P]{db: db}
}

func (t *Table[T, P]) name() string {
	return P(new(T)).TableName()
}

// Create inserts row. A non-zero ID is used as given, otherwise the database assigns one
// and it is written back into row.
func (t *Table[T, P]) Create(ctx context.Context, row P) error {
	explicitID := row.GetID() != 0
	if err := t.db.WithContext(ctx).Create(row).Error; err != nil {
		return translate("create", t.name(), err)
	}
	if explicitID {
		return t.syncSequence(ctx)
	}
	return nil
}

// Get returns the row with the given primary key or ErrNotFound
func (t *Table[T, P]) Get(ctx context.Context, id uint) (P, error) {
	var row T
	if err := t.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translate("get", t.name(), err)
	}
	return P(&row), nil
}

// List returns every row in database order
func (t *Table[T, P]) List(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	if err := t.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, translate("list", t.name(), err)
	}
	return rows, nil
}

// Update writes every column of row under the given id, inserting it when the id is unused.
// Columns left at their zero value in row overwrite what was stored before.
func (t *Table[T, P]) Update(ctx context.Context, id uint, row P) error {
	row.SetID(id)

	err := t.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(row).Error
	if err != nil {
		return translate("update", t.name(), err)
	}
	return t.syncSequence(ctx)
}

// syncSequence moves the PostgreSQL id sequence past the highest stored id, so rows
// written with an explicit id are never handed out again by the sequence.
func (t *Table[T, P]) syncSequence(ctx context.Context) error {
	if t.db.Dialector.Name() != "postgres" {
		return nil
	}
	return resetSequence(t.db.WithContext(ctx), t.name())
}

// Delete removes the row with the given id. Deleting a missing id is not an error.
func (t *Table[T, P]) Delete(ctx context.Context, id uint) error {
	if err := t.db.WithContext(ctx).Delete(P(new(T)), id).Error; err != nil {
		return translate("delete", t.name(), err)
	}
	return nil
}

// Count returns the number of rows in the table
func (t *Table[T, P]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := t.db.WithContext(ctx).Model(P(new(T))).Count(&n).Error; err != nil {
		return 0, translate("count", t.name(), err)
	}
	return n, nil
}
