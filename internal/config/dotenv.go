// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultDotEnvPath is the dotenv file read, when present, before the
// environment is parsed.
const DefaultDotEnvPath = ".env"

// loadDotEnv exports the variables of the dotenv file at path into the
// process environment. Variables that are already set are left untouched,
// so the real environment always wins. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading dotenv file %s: %w", path, err)
}
