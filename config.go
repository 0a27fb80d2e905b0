// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

// Config bundles the pluggable parts of a Document: its class
// registry, its converter registry, and the PDF version it targets
// (spec §6 "Configuration").
type Config struct {
	Classes    *ClassRegistry
	Converters *ConverterRegistry
	Version    Version

	// PinVersion disables automatic version bumping: writing a field
	// whose MinVersion exceeds Version then fails with
	// VersionConflictError instead of raising the document's version.
	PinVersion bool

	// FlateCompression is the zlib compression level (0-9) used by
	// NewFlateStream (config key filter.flate_compression).
	FlateCompression int
}

// DefaultConfig returns a Config with the built-in classes and the
// canonical converter order registered, targeting PDF 1.7 with
// automatic version bumping enabled.
func DefaultConfig() *Config {
	classes := NewClassRegistry()
	RegisterBuiltinClasses(classes)
	return &Config{
		Classes:          classes,
		Converters:       DefaultConverterRegistry(),
		Version:          V1_7,
		PinVersion:       false,
		FlateCompression: 6,
	}
}
