// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/event"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchlog"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchrecord"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchresource"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchstrategy"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/schema"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/setting"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/tokenusage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	researchlogFields := schema.ResearchLog{}.Fields()
	_ = researchlogFields
	// researchlogDescTime is the schema descriptor for time field.
	researchlogDescTime := researchlogFields[1].Descriptor()
	// researchlog.DefaultTime holds the default value on creation for the time field.
	researchlog.DefaultTime = researchlogDescTime.Default.(func() time.Time)
	researchrecordFields := schema.ResearchRecord{}.Fields()
	_ = researchrecordFields
	// researchrecordDescProgress is the schema descriptor for progress field.
	researchrecordDescProgress := researchrecordFields[3].Descriptor()
	// researchrecord.DefaultProgress holds the default value on creation for the progress field.
	researchrecord.DefaultProgress = researchrecordDescProgress.Default.(int)
	// researchrecordDescCreatedAt is the schema descriptor for created_at field.
	researchrecordDescCreatedAt := researchrecordFields[4].Descriptor()
	// researchrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchrecord.DefaultCreatedAt = researchrecordDescCreatedAt.Default.(func() time.Time)
	researchresourceFields := schema.ResearchResource{}.Fields()
	_ = researchresourceFields
	// researchresourceDescTitle is the schema descriptor for title field.
	researchresourceDescTitle := researchresourceFields[1].Descriptor()
	// researchresource.DefaultTitle holds the default value on creation for the title field.
	researchresource.DefaultTitle = researchresourceDescTitle.Default.(string)
	// researchresourceDescSourceType is the schema descriptor for source_type field.
	researchresourceDescSourceType := researchresourceFields[4].Descriptor()
	// researchresource.DefaultSourceType holds the default value on creation for the source_type field.
	researchresource.DefaultSourceType = researchresourceDescSourceType.Default.(string)
	// researchresourceDescCreatedAt is the schema descriptor for created_at field.
	researchresourceDescCreatedAt := researchresourceFields[7].Descriptor()
	// researchresource.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchresource.DefaultCreatedAt = researchresourceDescCreatedAt.Default.(func() time.Time)
	researchstrategyFields := schema.ResearchStrategy{}.Fields()
	_ = researchstrategyFields
	// researchstrategyDescCreatedAt is the schema descriptor for created_at field.
	researchstrategyDescCreatedAt := researchstrategyFields[2].Descriptor()
	// researchstrategy.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchstrategy.DefaultCreatedAt = researchstrategyDescCreatedAt.Default.(func() time.Time)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[3].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
	tokenusageFields := schema.TokenUsage{}.Fields()
	_ = tokenusageFields
	// tokenusageDescPromptTokens is the schema descriptor for prompt_tokens field.
	tokenusageDescPromptTokens := tokenusageFields[3].Descriptor()
	// tokenusage.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	tokenusage.DefaultPromptTokens = tokenusageDescPromptTokens.Default.(int)
	// tokenusageDescCompletionTokens is the schema descriptor for completion_tokens field.
	tokenusageDescCompletionTokens := tokenusageFields[4].Descriptor()
	// tokenusage.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	tokenusage.DefaultCompletionTokens = tokenusageDescCompletionTokens.Default.(int)
	// tokenusageDescTotalTokens is the schema descriptor for total_tokens field.
	tokenusageDescTotalTokens := tokenusageFields[5].Descriptor()
	// tokenusage.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	tokenusage.DefaultTotalTokens = tokenusageDescTotalTokens.Default.(int)
	// tokenusageDescCreatedAt is the schema descriptor for created_at field.
	tokenusageDescCreatedAt := tokenusageFields[7].Descriptor()
	// tokenusage.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokenusage.DefaultCreatedAt = tokenusageDescCreatedAt.Default.(func() time.Time)
}
