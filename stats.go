package main

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Magnitude computes the Euclidean norm of the coupling vector, taking
// the real and imaginary parts of each axis as separate components
func (c CouplingRecord) Magnitude() float64 {
	return floats.Norm(c.Vector(), 2)
}

// SOCMatrix stacks the coupling vectors of records into an n x 6
// matrix. It returns nil for no records since gonum does not allow
// empty matrices.
func SOCMatrix(records []CouplingRecord) *mat.Dense {
	if len(records) == 0 {
		return nil
	}
	const cols = 6
	data := make([]float64, 0, cols*len(records))
	for _, rec := range records {
		data = append(data, rec.Vector()...)
	}
	return mat.NewDense(len(records), cols, data)
}

// Magnitudes returns the row norms of SOCMatrix(records)
func Magnitudes(records []CouplingRecord) []float64 {
	m := SOCMatrix(records)
	if m == nil {
		return nil
	}
	r, _ := m.Dims()
	ret := make([]float64, r)
	for i := 0; i < r; i++ {
		ret[i] = mat.Norm(m.RowView(i), 2)
	}
	return ret
}
