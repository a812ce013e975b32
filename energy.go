package main

import (
	"regexp"
	"strconv"
	"strings"
)

// Family selects which block of TD-DFT excited states to scan
type Family int

const (
	Singlet Family = iota
	Triplet
)

const (
	TRIPLET_MARKER = "Entering triplet calculation"
	SOC_MARKER     = "SPIN-ORBIT COUPLING"
)

var (
	energyPattern = regexp.MustCompile(
		`STATE\s+(\d+):\s+E=\s+.*? au\s+(-?\d+\.\d+)\s+eV`,
	)
	statePattern   = regexp.MustCompile(`STATE\s+\d+:`)
	singletSection = regexp.MustCompile(
		`(?s)TD-DFT/TDA EXCITED STATES \(SINGLETS\)(.*?)` +
			TRIPLET_MARKER,
	)
)

func (f Family) String() string {
	switch f {
	case Singlet:
		return "SINGLET"
	case Triplet:
		return "TRIPLET"
	default:
		return "Family(" + strconv.Itoa(int(f)) + ")"
	}
}

// Header returns the line fragment that opens the excited state
// listing for f
func (f Family) Header() string {
	return "TD-DFT/TDA EXCITED STATES (" + f.String() + "S)"
}

// EnergyTable maps a state index within its family to its excitation
// energy in eV
type EnergyTable map[int]float64

// scanState is the position of a line scanner relative to the section
// it is looking for
type scanState int

const (
	outside scanState = iota
	inside
	stopped
)

func (s scanState) String() string {
	return [...]string{"outside", "inside", "stopped"}[s]
}

// energyStep returns the state after line and whether line should be
// tried against the energy pattern. A header line always (re)opens the
// section, and either terminator closes it regardless of the family
// being scanned.
func energyStep(state scanState, line, header string) (next scanState, parse bool) {
	switch state {
	case outside, inside:
		if strings.Contains(line, header) {
			return inside, false
		}
		if state == outside {
			return outside, false
		}
		if strings.Contains(line, TRIPLET_MARKER) ||
			strings.Contains(line, SOC_MARKER) {
			return stopped, false
		}
		return inside, true
	}
	return stopped, false
}

// parseEnergy extracts the absolute state number and the energy in eV
// from a single STATE line
func parseEnergy(line string) (state int, ev float64, ok bool) {
	m := energyPattern.FindStringSubmatch(line)
	if m == nil {
		return
	}
	var err error
	if state, err = strconv.Atoi(m[1]); err != nil {
		return
	}
	if ev, err = strconv.ParseFloat(m[2], 64); err != nil {
		return
	}
	return state, ev, true
}

// TripletOffset returns the number of singlet states declared between
// the singlet header and the start of the triplet calculation. ORCA
// numbers the triplets as a continuation of the singlets, so this is
// subtracted from their absolute state numbers.
func TripletOffset(doc string) int {
	m := singletSection.FindStringSubmatch(doc)
	if m == nil {
		return 0
	}
	return len(statePattern.FindAllStringIndex(m[1], -1))
}

// ExtractEnergies scans doc for the excited state listing of fam and
// returns the energy of each state. Triplet indices are shifted to
// start at 1. A missing section gives an empty table.
func ExtractEnergies(doc string, fam Family) EnergyTable {
	log := WithComponent("energy").With("family", fam.String())
	var offset int
	if fam == Triplet {
		offset = TripletOffset(doc)
	}
	ret := make(EnergyTable)
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
		state, parse = energyStep(state, line, fam.Header())
		if state != prev {
			log.Debug("section transition",
				"from", prev, "to", state)
		}
		if !parse {
			continue
		}
		n, ev, ok := parseEnergy(line)
		if !ok {
			skipped++
			continue
		}
		ret[n-offset] = ev
	}
	log.Debug("extracted energies", "states", len(ret),
		"offset", offset, "skipped", skipped)
	return ret
}

// lineBreaks matches the line endings that end a line of ORCA output,
// including the bare carriage returns of old Mac-style files
var lineBreaks = regexp.MustCompile(`\r\n|\r|\n`)

// splitLines splits doc into lines without any limit on line length.
// A trailing line break does not produce an empty final line.
func splitLines(doc string) []string {
	if doc == "" {
		return nil
	}
	lines := lineBreaks.Split(doc, -1)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
