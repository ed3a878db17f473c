// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch {
	case cfg.Storage.DB.DSN == "":
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	case cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	r := cfg.Redaction
	if r.MaskText != "" && r.MaskText == r.DeniedText {
		return fmt.Errorf("%w: mask and denied texts must differ", ErrInvalidRedactionConfigs)
	}

	return nil
}
