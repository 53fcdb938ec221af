package config

import (
	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/stylefang/pkg/report"
)

// Scan defaults.
const (
	// DefaultWorkers of zero selects the CPU count at runtime.
	DefaultWorkers = 0
)

// Rule defaults.
const (
	DefaultMaxLineLength         = 120
	DefaultCaseSensitiveAcronyms = true
)

// DefaultFolderNameExceptions lists folder names exempt from the
// CapitalCamelCase rule: dotfolders and OS-reserved names.
func DefaultFolderNameExceptions() []string {
	return []string{".ssh", ".git", ".github", ".config", "node_modules"}
}

// DefaultFileNameExceptions lists file names exempt from the casing rule:
// names imposed by external tooling.
func DefaultFileNameExceptions() []string {
	return []string{"__init__", "authorized_keys", "known_hosts", ".gitignore", ".gitattributes"}
}

// DefaultAcronyms lists well-known acronyms for the configurable
// case-sensitivity policy.
func DefaultAcronyms() []string {
	return []string{"API", "HTML", "HTTP", "ID", "JSON", "SQL", "UI", "URL", "UUID", "XML"}
}

// DefaultEnumPluralSuffixes lists the suffixes the enum singularity
// heuristic treats as plural markers.
func DefaultEnumPluralSuffixes() []string {
	return []string{"s"}
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("scan.workers", DefaultWorkers)

	viperCfg.SetDefault("rules.max_line_length", DefaultMaxLineLength)
	viperCfg.SetDefault("rules.folder_name_exceptions", DefaultFolderNameExceptions())
	viperCfg.SetDefault("rules.file_name_exceptions", DefaultFileNameExceptions())
	viperCfg.SetDefault("rules.acronyms", DefaultAcronyms())
	viperCfg.SetDefault("rules.case_sensitive_acronyms", DefaultCaseSensitiveAcronyms)
	viperCfg.SetDefault("rules.enum_plural_suffixes", DefaultEnumPluralSuffixes())

	viperCfg.SetDefault("output.format", report.FormatText)
	viperCfg.SetDefault("output.no_color", false)
}
