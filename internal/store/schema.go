package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names of the key-value table.
const (
	kvTableName    = "kv_entries"
	kvColumnKey    = "key"
	kvColumnValue  = "value"
	kvColumnUpdate = "updated_at"
)

var (
	// KVEntriesColumns holds the columns for the "kv_entries" table.
	KVEntriesColumns = []*schema.Column{
		{Name: kvColumnKey, Type: field.TypeString, Size: 128},
		{Name: kvColumnValue, Type: field.TypeString, Size: 2147483647},
		{Name: kvColumnUpdate, Type: field.TypeTime},
	}
	// KVEntriesTable holds the schema information for the "kv_entries" table.
	KVEntriesTable = &schema.Table{
		Name:       kvTableName,
		Columns:    KVEntriesColumns,
		PrimaryKey: []*schema.Column{KVEntriesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		KVEntriesTable,
	}
)
