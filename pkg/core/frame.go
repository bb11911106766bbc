package core

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
)

// ColumnKind discriminates the value type of a column.
type ColumnKind int

const (
	// KindNumber marks a column holding float64 values.
	KindNumber ColumnKind = iota
	// KindString marks a column holding string values.
	KindString
)

func (k ColumnKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	}
	return fmt.Sprintf("ColumnKind(%d)", int(k))
}

// Column is a named, typed vector of cell values.
// Exactly one of Floats or Strings is populated, according to Kind.
type Column struct {
	Name    string
	Kind    ColumnKind
	Floats  []float64
	Strings []string
}

// Len returns the number of cells in the column.
func (c Column) Len() int {
	if c.Kind == KindNumber {
		return len(c.Floats)
	}
	return len(c.Strings)
}

// NumberColumn builds a numeric column.
func NumberColumn(name string, vals []float64) Column {
	return Column{Name: name, Kind: KindNumber, Floats: vals}
}

// StringColumn builds a string column.
func StringColumn(name string, vals []string) Column {
	return Column{Name: name, Kind: KindString, Strings: vals}
}

// Fingerprint is a deterministic hash of a dataframe's raw cell values.
// Two dataframes with identical values yield the same fingerprint.
type Fingerprint [sha256.Size]byte

// Hex returns the fingerprint as a lowercase hex string.
func (f Fingerprint) Hex() string {
	return fmt.Sprintf("%x", f[:])
}

// Short returns a compact prefix of the fingerprint, suitable for
// deriving identifiers. Collisions within the prefix are accepted as
// negligible, not eliminated.
func (f Fingerprint) Short() string {
	return fmt.Sprintf("%x", f[:8])
}

// Dataframe is an ordered collection of named columns. It is treated as
// immutable once constructed; identity for registry purposes is derived
// from its cell values, not from object identity.
type Dataframe struct {
	order []string
	cols  map[string]Column
}

// NewDataframe builds a dataframe from the given columns, preserving
// their order. A duplicate column name overwrites the earlier one but
// keeps its original position.
func NewDataframe(cols ...Column) Dataframe {
	df := Dataframe{cols: make(map[string]Column, len(cols))}
	for _, c := range cols {
		if _, ok := df.cols[c.Name]; !ok {
			df.order = append(df.order, c.Name)
		}
		df.cols[c.Name] = c
	}
	return df
}

// Columns returns the column names in their original order.
func (df Dataframe) Columns() []string {
	out := make([]string, len(df.order))
	copy(out, df.order)
	return out
}

// Column returns the named column.
func (df Dataframe) Column(name string) (Column, bool) {
	c, ok := df.cols[name]
	return c, ok
}

// NumRows returns the length of the longest column.
func (df Dataframe) NumRows() int {
	n := 0
	for _, name := range df.order {
		if l := df.cols[name].Len(); l > n {
			n = l
		}
	}
	return n
}

// NumCols returns the number of columns.
func (df Dataframe) NumCols() int {
	return len(df.order)
}

// Fingerprint hashes the dataframe's raw values into a stable digest.
// The encoding covers column names, kinds and every cell byte, so two
// value-equal frames hash identically even when they are distinct
// objects rebuilt across cell re-executions.
func (df Dataframe) Fingerprint() Fingerprint {
	h := sha256.New()
	var scratch [8]byte
	writeStr := func(s string) {
		binary.LittleEndian.PutUint64(scratch[:], uint64(len(s)))
		h.Write(scratch[:])
		h.Write([]byte(s))
	}
	for _, name := range df.order {
		c := df.cols[name]
		writeStr(name)
		binary.LittleEndian.PutUint64(scratch[:], uint64(c.Kind))
		h.Write(scratch[:])
		switch c.Kind {
		case KindNumber:
			for _, v := range c.Floats {
				binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(v))
				h.Write(scratch[:])
			}
		case KindString:
			for _, v := range c.Strings {
				writeStr(v)
			}
		}
	}
	var f Fingerprint
	h.Sum(f[:0])
	return f
}
