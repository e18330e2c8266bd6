// Package schema creates the storefront tables and loads the demo catalog.
package schema

import (
	"context"
	"fmt"
	"log"

	"stonestore/internal/caching"
	"stonestore/pkg/database"

	"github.com/jackc/pgx/v5"
)

// Initializer creates the storefront tables and seeds empty ones.
type Initializer struct {
	db database.DBTX
}

func NewInitializer(db database.DBTX) *Initializer {
	return &Initializer{db: db}
}

// Run ensures the schema and then seeds. It is safe to call on every start.
func (i *Initializer) Run(ctx context.Context) error {
	if err := i.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := i.Seed(ctx); err != nil {
		return err
	}
	log.Println("Store database initialized")
	return nil
}

// Prepare runs the initializer and then clears cached catalog reads, so rows
// re-seeded on this start are not hidden behind entries from a previous run.
// A failed invalidation is only logged.
func (i *Initializer) Prepare(ctx context.Context, cache caching.CacheService) error {
	if err := i.Run(ctx); err != nil {
		return err
	}
	if cache == nil {
		return nil
	}
	if err := cache.InvalidateAll(ctx); err != nil {
		log.Printf("WARN: failed to clear catalog cache after initialization: %v", err)
	}
	return nil
}

// EnsureSchema creates any missing table.
func (i *Initializer) EnsureSchema(ctx context.Context) error {
	for _, stmt := range tableStatements {
		if _, err := i.db.Exec(ctx, stmt.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", stmt.table, err)
		}
	}
	return nil
}

// Seed inserts the fixed demo rows into every empty table inside a single
// transaction. Tables that already hold rows are left alone, so deleting a
// table's rows by hand makes the next start re-seed it.
func (i *Initializer) Seed(ctx context.Context) error {
	tx, err := i.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}

	for _, set := range seedSets {
		if err := seedTable(ctx, tx, set); err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Printf("WARN: seed rollback failed: %v", rbErr)
			}
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}

func seedTable(ctx context.Context, tx pgx.Tx, set seedSet) error {
	var count int64
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM "+set.table).Scan(&count); err != nil {
		return fmt.Errorf("count %s: %w", set.table, err)
	}
	if count > 0 {
		return nil
	}

	for _, row := range set.rows {
		if _, err := tx.Exec(ctx, set.insert, row...); err != nil {
			return fmt.Errorf("seed %s: %w", set.table, err)
		}
	}
	log.Printf("Seeded %d rows into %s", len(set.rows), set.table)
	return nil
}
