package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"
)

// LoadYAML reads a pair list from a YAML file shaped as a sequence of
// {question, answer} mappings.
func LoadYAML(path string) ([]Pair, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}

	var pairs []Pair
	if err := yaml.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("parse corpus file %s: %w", path, err)
	}
	return pairs, nil
}

// LoadSQLite reads pairs from the "pairs" table (question, answer columns) of
// a SQLite database, preserving row order.
func LoadSQLite(ctx context.Context, path string) ([]Pair, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open corpus database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT question, answer FROM pairs ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query corpus database: %w", err)
	}
	defer rows.Close()

	var pairs []Pair
	for rows.Next() {
		var p Pair
		if err := rows.Scan(&p.Question, &p.Answer); err != nil {
			return nil, fmt.Errorf("scan corpus row: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate corpus rows: %w", err)
	}
	return pairs, nil
}
