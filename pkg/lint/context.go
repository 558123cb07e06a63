package lint

import (
	"context"

	"github.com/hiracky16/sqlfluff/pkg/config"
	"github.com/hiracky16/sqlfluff/pkg/position"
)

// RuleContext provides all context needed by a rule to perform linting.
//
// RuleContext stores context.Context as a field rather than passing it as
// a method parameter: it is a short-lived parameter object created per
// rule invocation, which keeps the Rule interface to a single Check
// method while still supporting cancellation via Cancelled().
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// Mapper relates the source and templated texts.
	Mapper *position.Mapper

	// SQL is the templated text rules operate on (convenience alias for
	// Mapper.Templated()).
	SQL string

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig
}

// NewRuleContext creates a RuleContext for the given mapper and configuration.
func NewRuleContext(
	ctx context.Context,
	mapper *position.Mapper,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	var sql string
	if mapper != nil {
		sql = mapper.Templated()
	}

	return &RuleContext{
		Ctx:        ctx,
		Mapper:     mapper,
		SQL:        sql,
		Config:     cfg,
		RuleConfig: ruleCfg,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v := rc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	v := rc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	v := rc.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}
