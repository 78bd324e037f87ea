package reference

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTempReference(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "reference.tsv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadReferenceFile(t *testing.T) {
	path := writeTempReference(t, ""+
		"symbol\tstatus\tmy_synonyms\n"+
		"Actb\tofficial\tActb|Actx|beta-actin\n"+
		"Gfap\tofficial\t\n"+
		"Septin2\tofficial\tSept2|Nedd5\n")

	ref, err := Load(path, "my_synonyms")
	if err != nil {
		t.Fatal(err)
	}

	// All three symbols are canonical, including the synonym-less one.
	for _, symbol := range []string{"Actb", "Gfap", "Septin2"} {
		if !ref.Canonical.Has(symbol) {
			t.Errorf("canonical set lacks %s", symbol)
		}
	}

	// Gfap has no synonyms and is dropped from the table; the Actb
	// self-pair is discarded.
	want := []Row{
		{Symbol: "Actb", Synonyms: []string{"Actx", "beta-actin"}},
		{Symbol: "Septin2", Synonyms: []string{"Sept2", "Nedd5"}},
	}
	if !reflect.DeepEqual(ref.Rows, want) {
		t.Errorf("rows: got %+v, want %+v", ref.Rows, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.tsv"), "")

	var missing MissingFileError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingFileError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected the wrapped not-exist error to survive, got %v", err)
	}
}

func TestLoadMissingSynonymColumn(t *testing.T) {
	path := writeTempReference(t, "symbol\tother\nActb\tx\n")

	_, err := Load(path, "synonyms")

	var missing MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingColumnError", err)
	}
	if missing.Column != "synonyms" {
		t.Errorf("column: got %q, want synonyms", missing.Column)
	}
}

func TestLoadMissingSymbolColumn(t *testing.T) {
	path := writeTempReference(t, "gene\tsynonyms\nActb\tActx\n")

	var missing MissingColumnError
	if _, err := Load(path, ""); !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingColumnError", err)
	}
}

func TestLoadRejectsConflictingSynonymColumns(t *testing.T) {
	// A custom synonym column cannot coexist with a literal "synonyms"
	// column: the header rename would produce a duplicate.
	path := writeTempReference(t, ""+
		"symbol\tsynonyms\talt\n"+
		"Actb\tActx\tbeta-actin\n")

	if _, err := Load(path, "alt"); err == nil {
		t.Error("expected an error for a header colliding with the synonyms column")
	}

	if _, err := Load(path, "symbol"); err == nil {
		t.Error("expected an error when the synonym column shadows the symbol column")
	}
}

func TestBundledMouse(t *testing.T) {
	ref, err := Bundled("mouse")
	if err != nil {
		t.Fatal(err)
	}

	if !ref.Canonical.Has("Septin2") {
		t.Error("mouse canonical set lacks Septin2")
	}
	if ref.Canonical.Has("Sept2") {
		t.Error("deprecated Sept2 must not be canonical")
	}

	found := false
	for _, row := range ref.Rows {
		if row.Symbol == "Septin2" {
			found = true
			if row.Synonyms[0] != "Sept2" {
				t.Errorf("Septin2 synonyms: got %v, want Sept2 first", row.Synonyms)
			}
		}
	}
	if !found {
		t.Error("mouse synonym table lacks a Septin2 row")
	}

	again, err := Bundled("mouse")
	if err != nil {
		t.Fatal(err)
	}
	if ref != again {
		t.Error("bundled reference data must be loaded once and shared")
	}
}

func TestBundledUnknownSpecies(t *testing.T) {
	if _, err := Bundled("axolotl"); err == nil {
		t.Fatal("expected an error for a species without bundled data")
	}
}
