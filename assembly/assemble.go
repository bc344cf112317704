// Package assembly rebuilds nested row values from flat leaf values plus
// repetition and definition levels, following the record-assembly scheme of
// the Dremel paper. A single row's repeated values may be split across two
// pages; the assembler tracks the continuation index so the split tail
// extends the open row instead of starting a fresh one.
package assembly

import (
	"github.com/hexbee-net/errors"
)

const (
	ErrInvalidDefinitionLevel = errors.Error("invalid definition level")

	errLevelLengthMismatch = errors.Error("repetition and definition levels differ in length")
	errValuesExhausted     = errors.Error("leaf values exhausted")
	errDictIndex           = errors.Error("dictionary index out of range")
	errRowsExhausted       = errors.Error("row slots exhausted")
	errNoOpenRow           = errors.Error("page continues a row but no row is open")
)

// Element is one position inside a row's list: either an explicit null or a
// concrete leaf value. The two states are kept apart instead of overloading
// a nil interface value.
type Element struct {
	Null  bool
	Value interface{}
}

// Row is one assembled row slot: a wholly null row, or a list of elements
// (possibly empty, possibly containing null elements).
type Row struct {
	Null     bool
	Elements []Element
}

// Assembler reconstructs the rows of one column chunk. Pages of the chunk
// must be assembled in order through the same Assembler; the continuation
// index it carries between calls is what keeps a row split across a page
// boundary intact.
type Assembler struct {
	// Dict is the dictionary page values; leaf values are indices into
	// it when Dereference is set.
	Dict        []interface{}
	Dereference bool

	// RowNullable marks a column whose rows may be entirely null
	// (definition level zero). ElementNullable marks a column whose list
	// elements may individually be null.
	RowNullable     bool
	ElementNullable bool

	// MaxDefinition is the definition level meaning "leaf value present".
	MaxDefinition uint16

	next int
}

// Continuation returns the row index the next page will continue from: one
// past the last row slot written so far.
func (a *Assembler) Continuation() int {
	return a.next
}

// SetContinuation positions the assembler inside a partially filled row
// sequence, for callers resuming a chunk mid-way.
func (a *Assembler) SetContinuation(i int) {
	a.next = i
}

// AssemblePage walks one page's level pairs left to right and fills rows
// starting at the continuation index. A repetition level of zero closes the
// in-progress row, except at the page's first boundary where the
// accumulated elements instead extend the previous page's still-open last
// row. Returns the updated continuation index.
func (a *Assembler) AssemblePage(rows []Row, reps, defs []uint16, values []interface{}) (int, error) {
	if len(reps) != len(defs) {
		return a.next, errors.WithFields(
			errors.WithStack(errLevelLengthMismatch),
			errors.Fields{
				"repetitions": len(reps),
				"definitions": len(defs),
			})
	}

	nullThreshold := uint16(0)
	if a.RowNullable {
		nullThreshold = 1
	}

	i := a.next
	vali := 0
	part := []Element{}
	started := false
	haveNull := false

	for k := range reps {
		def := defs[k]

		if def > a.MaxDefinition {
			return a.next, errors.WithFields(
				errors.WithStack(ErrInvalidDefinitionLevel),
				errors.Fields{
					"level":     def,
					"max-level": a.MaxDefinition,
				})
		}

		if reps[k] == 0 {
			if started {
				if i >= len(rows) {
					return a.next, errors.WithStack(errRowsExhausted)
				}

				rows[i] = closeRow(part, haveNull)
				i++
				part = []Element{}
			} else {
				// The elements seen so far belong to the row
				// left open by the previous page.
				if len(part) > 0 || k > 0 {
					if i == 0 {
						return a.next, errors.WithStack(errNoOpenRow)
					}

					rows[i-1].Elements = append(rows[i-1].Elements, part...)
					part = []Element{}
				}

				started = true
			}
		}

		switch {
		case def == a.MaxDefinition:
			if vali >= len(values) {
				return a.next, errors.WithStack(errValuesExhausted)
			}

			v := values[vali]
			vali++

			if a.Dereference {
				var err error
				if v, err = a.dereference(v); err != nil {
					return a.next, err
				}
			}

			part = append(part, Element{Value: v})

		case def > nullThreshold:
			if !a.ElementNullable {
				return a.next, errors.WithFields(
					errors.WithStack(ErrInvalidDefinitionLevel),
					errors.Fields{
						"level":     def,
						"max-level": a.MaxDefinition,
					})
			}

			part = append(part, Element{Null: true})
		}

		haveNull = def == 0 && a.RowNullable
	}

	// flush the page's trailing part the same way a boundary would
	if started {
		if i >= len(rows) {
			return a.next, errors.WithStack(errRowsExhausted)
		}

		rows[i] = closeRow(part, haveNull)
		i++
	} else {
		if i == 0 {
			return a.next, errors.WithStack(errNoOpenRow)
		}

		rows[i-1].Elements = append(rows[i-1].Elements, part...)
	}

	a.next = i

	return i, nil
}

func (a *Assembler) dereference(v interface{}) (interface{}, error) {
	idx, ok := v.(int32)
	if !ok {
		return nil, errors.WithFields(
			errors.WithStack(errDictIndex),
			errors.Fields{
				"value": v,
			})
	}

	if int(idx) < 0 || int(idx) >= len(a.Dict) {
		return nil, errors.WithFields(
			errors.WithStack(errDictIndex),
			errors.Fields{
				"index":     idx,
				"dict-size": len(a.Dict),
			})
	}

	return a.Dict[idx], nil
}

func closeRow(part []Element, haveNull bool) Row {
	if haveNull {
		return Row{Null: true}
	}

	return Row{Elements: part}
}
