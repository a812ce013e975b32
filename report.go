package main

import (
	"errors"
	"strconv"
)

const NOT_AVAILABLE = "N/A"

var (
	ErrNoTable   = errors.New("SOCME table not found in output")
	ErrNoMatches = errors.New("no couplings found for the requested singlet states")
)

// HEADERS are the column labels of the exported report, in column
// order
var HEADERS = []string{
	"Triplet State", "Triplet Energy (eV)",
	"Singlet State", "Singlet Energy (eV)",
	"SOC (cm-1)",
}

// Energy is an excitation energy that may be missing from its
// EnergyTable
type Energy struct {
	Value float64
	Valid bool
}

// Format returns e with prec digits after the decimal point, or N/A if
// e is not valid. prec = -1 uses the fewest digits that represent the
// value exactly.
func (e Energy) Format(prec int) string {
	if !e.Valid {
		return NOT_AVAILABLE
	}
	return strconv.FormatFloat(e.Value, 'f', prec, 64)
}

func (e Energy) String() string {
	return e.Format(-1)
}

// Cell returns the value stored in a spreadsheet cell for e
func (e Energy) Cell() any {
	if !e.Valid {
		return NOT_AVAILABLE
	}
	return e.Value
}

// Get returns the energy of state i, which is invalid if i is not in
// the table
func (t EnergyTable) Get(i int) Energy {
	v, ok := t[i]
	return Energy{Value: v, Valid: ok}
}

// GetOrGround is like Get but treats a missing state as the ground
// state, at 0 eV
func (t EnergyTable) GetOrGround(i int) Energy {
	return Energy{Value: t[i], Valid: true}
}

// ReportRow is a single coupling between a triplet and a requested
// singlet along with the energies of both states
type ReportRow struct {
	Triplet       int
	TripletEnergy Energy
	Singlet       int
	SingletEnergy Energy
	SOC           float64
}

// Cells returns the values of r in HEADERS order
func (r ReportRow) Cells() []any {
	return []any{
		r.Triplet, r.TripletEnergy.Cell(),
		r.Singlet, r.SingletEnergy.Cell(),
		r.SOC,
	}
}

type Report struct {
	Rows []ReportRow
}

func (r Report) Headers() []string {
	return HEADERS
}

// Table returns the rows of r as cell values ready for export
func (r Report) Table() [][]any {
	ret := make([][]any, len(r.Rows))
	for i, row := range r.Rows {
		ret[i] = row.Cells()
	}
	return ret
}

// BuildReport joins records with their state energies and keeps those
// whose singlet is in wanted, preserving the order of records
func BuildReport(records []CouplingRecord, triplets, singlets EnergyTable,
	wanted map[int]struct{}) []ReportRow {
	mags := Magnitudes(records)
	ret := make([]ReportRow, 0)
	for i, rec := range records {
		if _, ok := wanted[rec.Singlet]; !ok {
			continue
		}
		ret = append(ret, ReportRow{
			Triplet:       rec.Triplet,
			TripletEnergy: triplets.Get(rec.Triplet),
			Singlet:       rec.Singlet,
			SingletEnergy: singlets.GetOrGround(rec.Singlet),
			SOC:           mags[i],
		})
	}
	return ret
}

// Process runs the full extraction on the ORCA output in doc. The
// errors ErrNoTable and ErrNoMatches report an empty result rather
// than a failure.
func Process(doc string, wanted map[int]struct{}) (Report, error) {
	singlets := ExtractEnergies(doc, Singlet)
	triplets := ExtractEnergies(doc, Triplet)
	records := ExtractCouplings(doc)
	if len(records) == 0 {
		return Report{}, ErrNoTable
	}
	rows := BuildReport(records, triplets, singlets, wanted)
	if len(rows) == 0 {
		return Report{}, ErrNoMatches
	}
	return Report{Rows: rows}, nil
}
