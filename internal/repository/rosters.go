package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/staffsync-dev/staffsync/backend/internal/domain"
)

// 勤務表はメンバー配列全体を 1 レコードの JSONB 文書として保存する。
// storage_key は固定のバージョン付き識別子（config.Storage.Key）

func (r *Repository) GetRoster(key string) (domain.Roster, error) {
	query := `
		SELECT data FROM rosters WHERE storage_key = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var data []byte
	if err := r.dbpool.QueryRowContext(ctx, query, key).Scan(&data); err != nil {
		return nil, err
	}

	var roster domain.Roster
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, err
	}

	return roster, nil
}

func (r *Repository) SaveRoster(key string, roster domain.Roster) error {
	data, err := json.Marshal(roster)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO rosters (storage_key, data)
		VALUES ($1, $2)
		ON CONFLICT (storage_key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = now(), version = rosters.version + 1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, key, data); err != nil {
		return err
	}

	return nil
}
