package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Repository property keys read by the handle resolver.
const (
	KeyHandlePrefix       = "handle.prefix"
	KeyAdditionalPrefixes = "handle.additional.prefixes"
	KeyCheckNameAuthority = "handle.plugin.checknameauthority"
	KeyMultiplePrefixes   = "handle.plugin.multipleprefixes"
	KeyCanonicalPrefix    = "handle.canonical.prefix"
	KeyRepositoryName     = "dspace.name"
	KeyRepositoryEmail    = "help.mail"
	KeyUIURL              = "dspace.ui.url"
)

var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// referencePattern matches a "${other.key}" reference inside a value.
var referencePattern = regexp.MustCompile(`\$\{([^${}]+)\}`)

// maxReferenceDepth bounds nested reference expansion.
const maxReferenceDepth = 16

// Properties is a read-only view of repository properties in the dspace.cfg
// "key = value" format. An environment variable named after the key
// (upper case, dots replaced by underscores) overrides the file value.
type Properties struct {
	values map[string]string
}

// NewProperties returns Properties backed by the given values.
func NewProperties(values map[string]string) *Properties {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Properties{values: copied}
}

// LoadProperties parses the properties file at path. An empty path yields
// Properties that only consult the environment.
func LoadProperties(path string) (*Properties, error) {
	if path == "" {
		return NewProperties(nil), nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties file %s: %w", path, err)
	}
	return &Properties{values: values}, nil
}

// GetString returns the trimmed value of key and whether it is configured.
// "${other.key}" references are replaced by the value of other.key; unknown
// and cyclic references are left as written.
func (p *Properties) GetString(key string) (string, bool) {
	value, ok := p.lookup(key)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(p.expand(value, map[string]bool{key: true})), true
}

func (p *Properties) lookup(key string) (string, bool) {
	fileValue, inFile := p.values[key]
	value := env.GetString(EnvKey(key), fileValue)
	if !inFile && value == "" {
		return "", false
	}
	return value, true
}

// expand resolves references in value. seen holds the keys being expanded.
func (p *Properties) expand(value string, seen map[string]bool) string {
	return referencePattern.ReplaceAllStringFunc(value, func(ref string) string {
		name := strings.TrimSpace(ref[2 : len(ref)-1])
		if seen[name] || len(seen) > maxReferenceDepth {
			return ref
		}

		resolved, ok := p.lookup(name)
		if !ok {
			return ref
		}

		seen[name] = true
		defer delete(seen, name)
		return strings.TrimSpace(p.expand(resolved, seen))
	})
}

// GetBool returns the boolean value of key, or def when it is absent or unparsable.
func (p *Properties) GetBool(key string, def bool) bool {
	raw, ok := p.GetString(key)
	if !ok {
		return def
	}

	switch strings.ToLower(raw) {
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}

	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return b
}

// GetInt returns the integer value of key, or def when it is absent or unparsable.
func (p *Properties) GetInt(key string, def int) int {
	raw, ok := p.GetString(key)
	if !ok {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// GetStrings splits a comma separated value, dropping empty entries.
func (p *Properties) GetStrings(key string) []string {
	raw, ok := p.GetString(key)
	if !ok {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// EnvKey maps a property key to the environment variable that overrides it.
func EnvKey(key string) string {
	return strings.ToUpper(envKeyReplacer.Replace(key))
}
