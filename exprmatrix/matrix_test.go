package exprmatrix

import (
	"bytes"
	"errors"
	"log"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	good := &Matrix{
		Genes:   []string{"Actb", "Gapdh"},
		Samples: []string{"s1", "s2"},
		Values:  [][]float64{{1, 2}, {3, 4}},
	}
	if err := Validate(good); err != nil {
		t.Errorf("valid matrix rejected: %v", err)
	}

	for _, bad := range []*Matrix{
		nil,
		{},
		{Genes: []string{"Actb", "Actb"}, Samples: []string{"s1"}, Values: [][]float64{{1}, {2}}},
		{Genes: []string{"Actb"}, Samples: []string{"s1", "s2"}, Values: [][]float64{{1}}},
		{Genes: []string{""}, Samples: []string{"s1"}, Values: [][]float64{{1}}},
		{Genes: []string{"Actb", "Gapdh"}, Samples: []string{"s1"}, Values: [][]float64{{1}}},
		{Genes: []string{"NaN", "Actb"}, Samples: []string{"s1"}, Values: [][]float64{{1}, {2}}},
		{Genes: []string{"Actb"}, Samples: []string{"s1"}, Values: [][]float64{{math.NaN()}}},
	} {
		var invalid InvalidInputError
		if err := Validate(bad); !errors.As(err, &invalid) {
			t.Errorf("matrix %+v: got %v, want InvalidInputError", bad, err)
		}
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	m := &Matrix{
		Genes:   []string{"Actb"},
		Samples: []string{"s1"},
		Values:  [][]float64{{1}},
	}

	c := m.Clone()
	c.Values[0][0] = 99
	c.Genes[0] = "Other"

	if m.Values[0][0] != 1 || m.Genes[0] != "Actb" {
		t.Errorf("clone aliases the original: %+v", m)
	}
}

func TestParseTabDelimited(t *testing.T) {
	in := "gene\ts1\ts2\nActb\t1\t2.5\nGapdh\t3\t4\n"

	m, err := Parse(strings.NewReader(in), nil)
	if err != nil {
		t.Fatal(err)
	}

	want := &Matrix{
		Genes:   []string{"Actb", "Gapdh"},
		Samples: []string{"s1", "s2"},
		Values:  [][]float64{{1, 2.5}, {3, 4}},
	}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("got %+v, want %+v", m, want)
	}
}

func TestParseCommaDelimited(t *testing.T) {
	in := "gene,s1,s2\nActb,1,2\n"

	m, err := Parse(strings.NewReader(in), nil)
	if err != nil {
		t.Fatal(err)
	}

	if want := []float64{1, 2}; !reflect.DeepEqual(m.Values[0], want) {
		t.Errorf("got %+v, want %+v", m.Values[0], want)
	}
}

func TestParseCoercesTextEncodedNumbers(t *testing.T) {
	in := "gene\ts1\nActb\t'1.25'\n"

	m, err := Parse(strings.NewReader(in), nil)
	if err != nil {
		t.Fatal(err)
	}

	if m.Values[0][0] != 1.25 {
		t.Errorf("got %v, want 1.25", m.Values[0][0])
	}
}

func TestParseRejectsNonNumericValues(t *testing.T) {
	in := "gene\ts1\nActb\thigh\n"

	var invalid InvalidInputError
	if _, err := Parse(strings.NewReader(in), nil); !errors.As(err, &invalid) {
		t.Fatalf("got %v, want InvalidInputError", err)
	}
}

func TestParseRejectsNaNValues(t *testing.T) {
	// strconv accepts "NaN", so the check has to live in validation.
	in := "gene\ts1\nActb\tNaN\n"

	var invalid InvalidInputError
	if _, err := Parse(strings.NewReader(in), nil); !errors.As(err, &invalid) {
		t.Fatalf("got %v, want InvalidInputError", err)
	}
}

func TestParseCoercionCautionGoesToInjectedLogger(t *testing.T) {
	var diags bytes.Buffer

	if _, err := Parse(strings.NewReader("gene\ts1\nActb\t'1.25'\n"), log.New(&diags, "", 0)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(diags.String(), "Caution") {
		t.Error("expected the coercion caution on the injected logger")
	}

	diags.Reset()
	if _, err := Parse(strings.NewReader("gene\ts1\nActb\t1.25\n"), log.New(&diags, "", 0)); err != nil {
		t.Fatal(err)
	}
	if diags.Len() != 0 {
		t.Errorf("clean input must not log a caution, got %q", diags.String())
	}
}
