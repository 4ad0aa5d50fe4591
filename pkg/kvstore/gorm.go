package kvstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is a row of the kv_entries table used by the gorm engine.
type Entry struct {
	StorageKey []byte `gorm:"column:storage_key;primaryKey;type:varbinary(255)"`
	Value      []byte `gorm:"column:value;type:longblob"`
}

func (Entry) TableName() string {
	return "kv_entries"
}

type gormStore struct {
	db *gorm.DB
}

// NewGormStore keeps entries in a sql table, so any database supported by gorm
// can back the host.
func NewGormStore(db *gorm.DB) *gormStore {
	return &gormStore{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Entry{})
}

func (s *gormStore) Begin(ctx context.Context) (Tx, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	return &gormTx{tx: tx}, nil
}

func (s *gormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

type gormTx struct {
	tx     *gorm.DB
	closed bool
}

func (t *gormTx) Get(key []byte) ([]byte, error) {
	if t.closed {
		return nil, ErrTxClosed
	}

	var entry Entry
	err := t.tx.Where("storage_key = ?", key).Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if entry.Value == nil {
		return []byte{}, nil
	}

	return entry.Value, nil
}

func (t *gormTx) Has(key []byte) (bool, error) {
	if t.closed {
		return false, ErrTxClosed
	}

	var count int64
	if err := t.tx.Model(&Entry{}).Where("storage_key = ?", key).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (t *gormTx) Set(key, value []byte) error {
	if t.closed {
		return ErrTxClosed
	}

	if value == nil {
		value = []byte{}
	}

	return t.tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Entry{StorageKey: clone(key), Value: clone(value)}).Error
}

func (t *gormTx) Delete(key []byte) error {
	if t.closed {
		return ErrTxClosed
	}

	return t.tx.Where("storage_key = ?", key).Delete(&Entry{}).Error
}

func (t *gormTx) Commit() error {
	if t.closed {
		return ErrTxClosed
	}

	t.closed = true
	return t.tx.Commit().Error
}

func (t *gormTx) Rollback() error {
	if t.closed {
		return ErrTxClosed
	}

	t.closed = true
	return t.tx.Rollback().Error
}
