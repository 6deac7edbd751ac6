package core

// parse_config.go builds the ImportConfig from the Import_Config key/value
// sheet. The sheet is optional: absence, or absence of individual keys,
// falls back to DefaultConfig. Invalid values are reported as errors and the
// default is kept, so later stages always see a usable configuration.

import (
	"regexp"
	"strings"
)

// languageRegex accepts a 2-letter language code with an optional 2-letter
// region, e.g. "en" or "en-US".
var languageRegex = regexp.MustCompile(`^[A-Za-z]{2}(-[A-Za-z]{2})?$`)

// parseConfig reads the configuration sheet. It never drops keys it does not
// understand silently: unknown keys warn, malformed values error.
func parseConfig(data SheetData) (ImportConfig, []Issue) {
	cfg := DefaultConfig()
	if !data.Present {
		return cfg, nil
	}

	var issues []Issue
	for _, m := range data.Missing {
		issues = append(issues, sheetError(data.Name, "required column %q is missing", m))
	}
	if len(data.Missing) > 0 {
		return cfg, issues
	}

	for _, row := range data.Rows {
		if row.Blank() {
			continue
		}

		key := normalizeIdentifier(row.Get("key").String())
		if key == "" {
			issues = append(issues, errorAt(data.Name, row.Num, "key", "key is required"))
			continue
		}
		value := row.Get("value").String()

		switch key {
		case ConfigKeyMode:
			switch ImportMode(strings.ToUpper(value)) {
			case ModeCreateOnly, ModeUpdateOnly, ModeCreateUpdate:
				cfg.Mode = ImportMode(strings.ToUpper(value))
			default:
				issues = append(issues, errorAt(data.Name, row.Num, "value",
					"mode must be CREATE_ONLY, UPDATE_ONLY, or CREATE_UPDATE"))
			}

		case ConfigKeyErrorPolicy:
			switch ErrorPolicy(strings.ToUpper(value)) {
			case PolicyProcessWarn, PolicyWarnRejected:
				cfg.ErrorPolicy = ErrorPolicy(strings.ToUpper(value))
			default:
				issues = append(issues, errorAt(data.Name, row.Num, "value",
					"error policy must be PROCESS_WARN or WARN_REJECTED"))
			}

		case ConfigKeyDefaultLanguage:
			if !languageRegex.MatchString(value) {
				issues = append(issues, errorAt(data.Name, row.Num, "value",
					"default language must be a 2-letter code, optionally with a region (e.g. en or en-US)"))
				continue
			}
			cfg.DefaultLanguage = normalizeLanguageTag(value)

		default:
			issues = append(issues, warnAt(data.Name, row.Num, "key", "unknown configuration key %q", key))
		}
	}

	return cfg, issues
}

// normalizeLanguageTag lowercases the language part and uppercases the
// region, so "EN-us" becomes "en-US".
func normalizeLanguageTag(tag string) string {
	parts := strings.SplitN(tag, "-", 2)
	out := strings.ToLower(parts[0])
	if len(parts) == 2 {
		out += "-" + strings.ToUpper(parts[1])
	}
	return out
}
