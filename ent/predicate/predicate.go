// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ResearchLog is the predicate function for researchlog builders.
type ResearchLog func(*sql.Selector)

// ResearchRecord is the predicate function for researchrecord builders.
type ResearchRecord func(*sql.Selector)

// ResearchResource is the predicate function for researchresource builders.
type ResearchResource func(*sql.Selector)

// ResearchStrategy is the predicate function for researchstrategy builders.
type ResearchStrategy func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// TokenUsage is the predicate function for tokenusage builders.
type TokenUsage func(*sql.Selector)
