package na

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml"
)

// ErrUnknownCountry is returned by Load when no National Annex table is
// embedded for the requested country.
var ErrUnknownCountry = errors.New("na: no national annex for country")

// Country is an ISO 3166-1 alpha-2 code, lower case.
type Country string

const (
	// Austria keeps the recommended values for the partial factors
	// covered here.
	Austria Country = "at"
	// Germany applies DIN EN 1993-1-1/NA deviations.
	Germany Country = "de"
)

//go:embed params/*.toml
var paramsFS embed.FS

// annexFile is the on-disk TOML layout: one [params] table with quoted
// clause keys.
type annexFile struct {
	Params map[string]float64 `toml:"params"`
}

// Annex is one country's set of nationally determined parameters.
// Annexes are immutable after Load and safe for concurrent reads.
//
// The nil *Annex is valid and stands for the recommended values: Has
// reports false and Float returns the supplied default for every key.
type Annex struct {
	country Country
	params  map[string]float64
}

// Load reads the embedded National Annex table for c. Returns
// ErrUnknownCountry when no table is embedded for the code.
func Load(c Country) (*Annex, error) {
	raw, err := paramsFS.ReadFile("params/" + string(c) + ".toml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, c)
	}
	var file annexFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("na: parse annex %q: %w", c, err)
	}
	return &Annex{country: c, params: file.Params}, nil
}

// Countries lists the country codes with an embedded annex, sorted.
func Countries() []Country {
	entries, err := paramsFS.ReadDir("params")
	if err != nil {
		return nil
	}
	out := make([]Country, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".toml") {
			continue
		}
		out = append(out, Country(strings.TrimSuffix(name, ".toml")))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Country returns the code the annex was loaded for.
func (a *Annex) Country() Country {
	if a == nil {
		return ""
	}
	return a.country
}

// Has reports whether the annex determines a value for key.
func (a *Annex) Has(key string) bool {
	if a == nil {
		return false
	}
	_, ok := a.params[key]
	return ok
}

// Float returns the nationally determined value for key, or def when
// the annex does not determine one. A nil receiver always returns def.
func (a *Annex) Float(key string, def float64) float64 {
	if a == nil {
		return def
	}
	if v, ok := a.params[key]; ok {
		return v
	}
	return def
}

// Keys returns the determined parameter keys, sorted. Mostly useful for
// diagnostics and tests.
func (a *Annex) Keys() []string {
	if a == nil {
		return nil
	}
	out := make([]string, 0, len(a.params))
	for k := range a.params {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
