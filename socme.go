package main

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	SOCME_HEADER = "CALCULATED SOCME BETWEEN TRIPLETS AND SINGLETS"
	SOCME_END    = "SOC stabilization of the ground state"
)

var (
	socPair      = `\(\s*(-?\d+\.\d+)\s*,\s*(-?\d+\.\d+)\s*\)`
	socmePattern = regexp.MustCompile(
		`^\s*(\d+)\s+(\d+)\s+` +
			socPair + `\s+` + socPair + `\s+` + socPair,
	)
)

// CouplingRecord is one row of the SOCME table: the spin-orbit
// coupling matrix element <T|HSO|S> between a triplet and a singlet
// state, given as one complex number per Cartesian axis in cm-1
type CouplingRecord struct {
	Triplet int
	Singlet int
	SOC     [3]complex128
}

// Vector returns the six real components of the coupling vector in
// (re, im) order for each axis
func (c CouplingRecord) Vector() []float64 {
	ret := make([]float64, 0, 2*len(c.SOC))
	for _, z := range c.SOC {
		ret = append(ret, real(z), imag(z))
	}
	return ret
}

// socmeStep is the SOCME table analogue of energyStep. The end marker
// is only honored once the table has started.
func socmeStep(state scanState, line string) (next scanState, parse bool) {
	switch state {
	case outside, inside:
		if strings.Contains(line, SOCME_HEADER) {
			return inside, false
		}
		if state == outside {
			return outside, false
		}
		if strings.Contains(line, SOCME_END) {
			return stopped, false
		}
		return inside, true
	}
	return stopped, false
}

// parseCoupling parses a full SOCME row. Lines that do not have
// exactly the row shape are rejected as a whole.
func parseCoupling(line string) (rec CouplingRecord, ok bool) {
	m := socmePattern.FindStringSubmatch(line)
	if m == nil {
		return
	}
	var err error
	if rec.Triplet, err = strconv.Atoi(m[1]); err != nil {
		return
	}
	if rec.Singlet, err = strconv.Atoi(m[2]); err != nil {
		return
	}
	vals := make([]float64, 6)
	for i := range vals {
		vals[i], err = strconv.ParseFloat(m[i+3], 64)
		if err != nil {
			return
		}
	}
	for i := range rec.SOC {
		rec.SOC[i] = complex(vals[2*i], vals[2*i+1])
	}
	return rec, true
}

// ExtractCouplings returns the rows of the SOCME table in the order
// they appear in doc
func ExtractCouplings(doc string) (ret []CouplingRecord) {
	log := WithComponent("socme")
	var (
		state   = outside
		parse   bool
		skipped int
	)
	for _, line := range splitLines(doc) {
		if state == stopped {
			break
		}
		prev := state
		state, parse = socmeStep(state, line)
		if state != prev {
			log.Debug("table transition", "from", prev, "to", state)
		}
		if !parse {
			continue
		}
		rec, ok := parseCoupling(line)
		if !ok {
			skipped++
			continue
		}
		ret = append(ret, rec)
	}
	log.Debug("extracted couplings", "rows", len(ret),
		"skipped", skipped)
	return
}
