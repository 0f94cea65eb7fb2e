package settings

import (
	"database/sql"
	"sync"

	"codeberg.org/mutker/cpuctl/internal/database"
	"codeberg.org/mutker/cpuctl/internal/errors"
	"codeberg.org/mutker/cpuctl/internal/logger"
)

type sqliteStore struct {
	db     *sql.DB
	mu     sync.Mutex
	logger logger.Logger
}

func NewStore(cfg Config, log logger.Logger) (Store, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.DBPath, schema(), log)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	log.Debug().Str("path", cfg.DBPath).Msg("Settings store opened")

	return &sqliteStore{db: db, logger: log}, nil
}

func (s *sqliteStore) GetAllItems(table, category string) ([]Item, error) {
	errFactory := errors.New()

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(selectItemsSQL, table, category)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageAccess, err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.Table, &item.Category, &item.Name, &item.FileName, &item.Value); err != nil {
			return nil, errFactory.Wrap(ErrStorageAccess, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errFactory.Wrap(ErrStorageAccess, err)
	}

	return items, nil
}

func (s *sqliteStore) Put(item Item) error {
	errFactory := errors.New()

	if item.Table == "" || item.Category == "" || item.Name == "" || item.FileName == "" {
		return errFactory.WithData(ErrInvalidItem, item)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(upsertItemSQL,
		item.Table, item.Category, item.Name, item.FileName, item.Value); err != nil {
		return errFactory.Wrap(ErrStorageAccess, err)
	}

	s.logger.Debug().
		Str("name", item.Name).
		Str("file", item.FileName).
		Str("value", item.Value).
		Msg("Setting stored")

	return nil
}

func (s *sqliteStore) Remove(table, category, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(deleteItemSQL, table, category, name); err != nil {
		return errors.New().Wrap(ErrStorageAccess, err)
	}

	return nil
}

func (s *sqliteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return errors.New().Wrap(ErrStorageClose, err)
	}
	return nil
}
