package registry

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/harolddawson/dircat/types"
)

var _ types.Registry = (*EnvFile)(nil)

// EnvFile is a location registry backed by a dotenv-style file of
// NAME=/path lines. The file is parsed once at load time; edits made to it
// afterwards are not picked up.
type EnvFile struct {
	m    map[string]string
	file string
}

// LoadEnvFile parses the dotenv file at path into a registry.
func LoadEnvFile(path string) (*EnvFile, error) {
	m, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("registry: load %s: %w", path, err)
	}
	return &EnvFile{m: m, file: path}, nil
}

// Lookup implements [types.Registry].
func (r *EnvFile) Lookup(_ context.Context, name string) (string, error) {
	path, ok := r.m[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", types.ErrNameNotFound, name)
	}
	return path, nil
}

// File returns the path the registry was loaded from.
func (r *EnvFile) File() string { return r.file }
