package reference

import (
	"embed"
	"fmt"
	"sort"
	"sync"
)

//go:embed lookups/*
var lookups embed.FS

// Bundled nomenclature snapshots, one per supported species. The files share
// the caller-supplied reference format (tab-delimited, symbol + synonyms
// columns), so both paths exercise the same parser.
var bundles = map[string]string{
	"mouse": "lookups/mgi.synonyms.tsv",
	"human": "lookups/hgnc.synonyms.tsv",
}

type lazyReference struct {
	once sync.Once
	ref  *Reference
	err  error
}

var bundleCache = map[string]*lazyReference{
	"mouse": {},
	"human": {},
}

// Species lists the species with bundled reference data.
func Species() []string {
	out := make([]string, 0, len(bundles))
	for s := range bundles {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// Bundled returns the process-wide reference data for the named species,
// loading it from the embedded snapshot on first use. The result is shared
// and must not be mutated.
func Bundled(species string) (*Reference, error) {
	cached, ok := bundleCache[species]
	if !ok {
		return nil, fmt.Errorf("no bundled reference data for species %q; options: %v", species, Species())
	}

	cached.once.Do(func() {
		data, err := lookups.ReadFile(bundles[species])
		if err != nil {
			cached.err = err
			return
		}
		cached.ref, cached.err = parseRows(data)
	})

	return cached.ref, cached.err
}
