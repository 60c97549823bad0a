package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// entriesColumns holds the columns of the "entries" table.
	entriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// entriesTable holds the schema information for the "entries" table.
	entriesTable = &schema.Table{
		Name:       "entries",
		Columns:    entriesColumns,
		PrimaryKey: []*schema.Column{entriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "entry_created_at",
				Unique:  false,
				Columns: []*schema.Column{entriesColumns[2]},
			},
		},
	}
	// tables holds every table managed by the store.
	tables = []*schema.Table{
		entriesTable,
	}
)

// migrate creates or updates all store tables.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
