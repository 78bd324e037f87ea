// fixsymbols repairs the gene-symbol row labels of an expression matrix:
// deprecated synonyms and spreadsheet-mangled names are mapped back to
// current canonical symbols, colliding rows are summed, and anything still
// unresolvable is reported.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kevmanderson/EWCE/exprmatrix"
	"github.com/kevmanderson/EWCE/fixsymbols"
	"github.com/kevmanderson/EWCE/reference"
)

// Special value that is to be set using ldflags
// E.g.: go build -ldflags "-X main.builddate=`date -u +%Y-%m-%d:%H:%M:%S%Z`"
var builddate string

func main() {
	var (
		matrixFile    string
		outFile       string
		species       string
		referenceFile string
		synonymColumn string
		allUnresolved bool
	)

	fmt.Fprintf(os.Stderr, "This fixsymbols binary was built at: %s\n", builddate)

	flag.StringVar(&matrixFile, "matrix", "", "Delimited expression matrix (first column gene symbols; may be gzip/zip/xz/bzip2 compressed)")
	flag.StringVar(&outFile, "out", "", "Output path for the corrected matrix (tab-delimited). Defaults to stdout.")
	flag.StringVar(&species, "species", fixsymbols.DefaultSpecies, fmt.Sprint("Species whose bundled reference data to use. Options: ", strings.Join(reference.Species(), ", ")))
	flag.StringVar(&referenceFile, "reference", "", "Optional tab-delimited reference file (symbol + pipe-joined synonyms) overriding the bundled data")
	flag.StringVar(&synonymColumn, "synonym-column", reference.DefaultSynonymColumn, "Name of the synonym column in the -reference file")
	flag.BoolVar(&allUnresolved, "all-unresolved", false, "List every label still unresolved after fixing, not just the first 20")
	flag.Parse()

	if matrixFile == "" {
		flag.PrintDefaults()
		return
	}

	m, err := exprmatrix.Open(matrixFile)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("Loaded %d genes x %d samples from %s", len(m.Genes), len(m.Samples), matrixFile)

	fixed, _, err := fixsymbols.Fix(m, fixsymbols.Options{
		ReferencePath:       referenceFile,
		SynonymColumn:       synonymColumn,
		Species:             species,
		ReportAllUnresolved: allUnresolved,
	})
	if err != nil {
		log.Fatalln(err)
	}

	if outFile == "" {
		if err := exprmatrix.Write(fixed, os.Stdout); err != nil {
			log.Fatalln(err)
		}
		return
	}

	if err := exprmatrix.Save(fixed, outFile); err != nil {
		log.Fatalln(err)
	}
	log.Printf("Wrote %d genes x %d samples to %s", len(fixed.Genes), len(fixed.Samples), outFile)
}
