// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "research_id", Type: field.TypeInt},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_research_history_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{ResearchHistoryColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// ResearchLogsColumns holds the columns for the "research_logs" table.
	ResearchLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "time", Type: field.TypeTime},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"info", "milestone", "error"}, Default: "info"},
		{Name: "progress", Type: field.TypeInt, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "research_id", Type: field.TypeInt},
	}
	// ResearchLogsTable holds the schema information for the "research_logs" table.
	ResearchLogsTable = &schema.Table{
		Name:       "research_logs",
		Columns:    ResearchLogsColumns,
		PrimaryKey: []*schema.Column{ResearchLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "research_logs_research_history_logs",
				Columns:    []*schema.Column{ResearchLogsColumns[6]},
				RefColumns: []*schema.Column{ResearchHistoryColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "researchlog_research_id_time",
				Unique:  false,
				Columns: []*schema.Column{ResearchLogsColumns[6], ResearchLogsColumns[1]},
			},
			{
				Name:    "researchlog_level",
				Unique:  false,
				Columns: []*schema.Column{ResearchLogsColumns[3]},
			},
		},
	}
	// ResearchHistoryColumns holds the columns for the "research_history" table.
	ResearchHistoryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "query", Type: field.TypeString, Size: 2147483647},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"quick", "detailed"}, Default: "quick"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed", "failed", "suspended"}, Default: "in_progress"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "report_path", Type: field.TypeString, Nullable: true},
		{Name: "research_meta", Type: field.TypeJSON, Nullable: true},
		{Name: "progress_log", Type: field.TypeJSON, Nullable: true},
	}
	// ResearchHistoryTable holds the schema information for the "research_history" table.
	ResearchHistoryTable = &schema.Table{
		Name:       "research_history",
		Columns:    ResearchHistoryColumns,
		PrimaryKey: []*schema.Column{ResearchHistoryColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "researchrecord_status",
				Unique:  false,
				Columns: []*schema.Column{ResearchHistoryColumns[3]},
			},
			{
				Name:    "researchrecord_mode",
				Unique:  false,
				Columns: []*schema.Column{ResearchHistoryColumns[2]},
			},
			{
				Name:    "researchrecord_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchHistoryColumns[3], ResearchHistoryColumns[5]},
			},
			{
				Name:    "researchrecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchHistoryColumns[5]},
			},
		},
	}
	// ResearchResourcesColumns holds the columns for the "research_resources" table.
	ResearchResourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Default: "Untitled"},
		{Name: "url", Type: field.TypeString, Size: 2147483647},
		{Name: "content_preview", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "source_type", Type: field.TypeString, Default: "web"},
		{Name: "citation_index", Type: field.TypeInt, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "research_id", Type: field.TypeInt},
	}
	// ResearchResourcesTable holds the schema information for the "research_resources" table.
	ResearchResourcesTable = &schema.Table{
		Name:       "research_resources",
		Columns:    ResearchResourcesColumns,
		PrimaryKey: []*schema.Column{ResearchResourcesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "research_resources_research_history_resources",
				Columns:    []*schema.Column{ResearchResourcesColumns[8]},
				RefColumns: []*schema.Column{ResearchHistoryColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "researchresource_research_id",
				Unique:  false,
				Columns: []*schema.Column{ResearchResourcesColumns[8]},
			},
			{
				Name:    "researchresource_research_id_citation_index",
				Unique:  false,
				Columns: []*schema.Column{ResearchResourcesColumns[8], ResearchResourcesColumns[5]},
			},
		},
	}
	// ResearchStrategyColumns holds the columns for the "research_strategy" table.
	ResearchStrategyColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "strategy_name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "research_id", Type: field.TypeInt, Unique: true},
	}
	// ResearchStrategyTable holds the schema information for the "research_strategy" table.
	ResearchStrategyTable = &schema.Table{
		Name:       "research_strategy",
		Columns:    ResearchStrategyColumns,
		PrimaryKey: []*schema.Column{ResearchStrategyColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "research_strategy_research_history_strategy",
				Columns:    []*schema.Column{ResearchStrategyColumns[3]},
				RefColumns: []*schema.Column{ResearchHistoryColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "researchstrategy_strategy_name",
				Unique:  false,
				Columns: []*schema.Column{ResearchStrategyColumns[1]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeJSON},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "setting_key",
				Unique:  true,
				Columns: []*schema.Column{SettingsColumns[1]},
			},
			{
				Name:    "setting_category",
				Unique:  false,
				Columns: []*schema.Column{SettingsColumns[3]},
			},
		},
	}
	// TokenUsageColumns holds the columns for the "token_usage" table.
	TokenUsageColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "model", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "call_kind", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "research_id", Type: field.TypeInt},
	}
	// TokenUsageTable holds the schema information for the "token_usage" table.
	TokenUsageTable = &schema.Table{
		Name:       "token_usage",
		Columns:    TokenUsageColumns,
		PrimaryKey: []*schema.Column{TokenUsageColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "token_usage_research_history_token_usages",
				Columns:    []*schema.Column{TokenUsageColumns[8]},
				RefColumns: []*schema.Column{ResearchHistoryColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tokenusage_research_id",
				Unique:  false,
				Columns: []*schema.Column{TokenUsageColumns[8]},
			},
			{
				Name:    "tokenusage_model",
				Unique:  false,
				Columns: []*schema.Column{TokenUsageColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		ResearchLogsTable,
		ResearchHistoryTable,
		ResearchResourcesTable,
		ResearchStrategyTable,
		SettingsTable,
		TokenUsageTable,
	}
)

func init() {
	EventsTable.ForeignKeys[0].RefTable = ResearchHistoryTable
	EventsTable.Annotation = &entsql.Annotation{
		Table: "events",
	}
	ResearchLogsTable.ForeignKeys[0].RefTable = ResearchHistoryTable
	ResearchLogsTable.Annotation = &entsql.Annotation{
		Table: "research_logs",
	}
	ResearchHistoryTable.Annotation = &entsql.Annotation{
		Table: "research_history",
	}
	ResearchResourcesTable.ForeignKeys[0].RefTable = ResearchHistoryTable
	ResearchResourcesTable.Annotation = &entsql.Annotation{
		Table: "research_resources",
	}
	ResearchStrategyTable.ForeignKeys[0].RefTable = ResearchHistoryTable
	ResearchStrategyTable.Annotation = &entsql.Annotation{
		Table: "research_strategy",
	}
	SettingsTable.Annotation = &entsql.Annotation{
		Table: "settings",
	}
	TokenUsageTable.ForeignKeys[0].RefTable = ResearchHistoryTable
	TokenUsageTable.Annotation = &entsql.Annotation{
		Table: "token_usage",
	}
}
