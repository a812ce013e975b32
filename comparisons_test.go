package main

import (
	"fmt"
	"math"
)

func charComp(got, want string) {
	for c := range got {
		if len(want) <= c {
			fmt.Println("want too short")
			return
		}
		if got[c] != want[c] {
			fmt.Printf("got\n%q, wanted\n%q\n",
				got[:c+1], want[:c+1])
			return
		}
	}
	if len(got) < len(want) {
		fmt.Println("got too short")
	}
}

func compFloat(a, b []float64, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func compEnergy(a, b Energy, eps float64) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || math.Abs(a.Value-b.Value) <= eps
}

// compRows reports whether a and b hold the same rows, comparing
// energies and SOC magnitudes to within eps
func compRows(a, b []ReportRow, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		switch {
		case a[i].Triplet != b[i].Triplet,
			a[i].Singlet != b[i].Singlet,
			!compEnergy(a[i].TripletEnergy, b[i].TripletEnergy, eps),
			!compEnergy(a[i].SingletEnergy, b[i].SingletEnergy, eps),
			math.Abs(a[i].SOC-b[i].SOC) > eps:
			fmt.Printf("row %d: %+v vs %+v\n", i, a[i], b[i])
			return false
		}
	}
	return true
}
