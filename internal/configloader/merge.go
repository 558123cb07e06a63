package configloader

import "github.com/hiracky16/sqlfluff/pkg/config"

// mergeConfig overlays src (a parsed config file) onto dst. Scalar
// fields replace when set; maps merge per key with src winning.
func mergeConfig(dst, src *config.Config) {
	if src.Templater != "" {
		dst.Templater = src.Templater
	}
	if src.SeverityDefault != "" {
		dst.SeverityDefault = src.SeverityDefault
	}

	for name, section := range src.Templaters {
		if dst.Templaters == nil {
			dst.Templaters = make(map[string]config.TemplaterConfig)
		}
		dst.Templaters[name] = section
	}

	for id, rule := range src.Rules {
		if dst.Rules == nil {
			dst.Rules = make(map[string]config.RuleConfig)
		}
		dst.Rules[id] = rule
	}

	dst.Ignore = append(dst.Ignore, src.Ignore...)
}

// mergeCLI overlays CLI flag values onto dst. CLI flags have the
// highest precedence; zero values mean "flag not set".
func mergeCLI(dst, cli *config.Config) {
	if cli.Templater != "" {
		dst.Templater = cli.Templater
	}
	if cli.Format != "" {
		dst.Format = cli.Format
	}
	if cli.RuleFormat != "" {
		dst.RuleFormat = cli.RuleFormat
	}
	if cli.Jobs > 0 {
		dst.Jobs = cli.Jobs
	}
	if cli.Strict {
		dst.Strict = true
	}

	dst.EnableRules = append(dst.EnableRules, cli.EnableRules...)
	dst.DisableRules = append(dst.DisableRules, cli.DisableRules...)
	dst.Ignore = append(dst.Ignore, cli.Ignore...)
}
