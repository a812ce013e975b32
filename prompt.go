package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Prompt writes question to w and returns the next line of r with
// surrounding whitespace removed
func Prompt(r *bufio.Reader, w io.Writer, question string) (string, error) {
	fmt.Fprint(w, question)
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading answer to %q: %w", question, err)
	}
	return strings.TrimSpace(line), nil
}

// ParseStates parses a comma-separated list of state numbers like
// "0,1,6" into a set
func ParseStates(s string) (map[int]struct{}, error) {
	ret := make(map[int]struct{})
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: state %q is not a number",
				ErrInvalidInput, field)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: state %d is negative",
				ErrInvalidInput, n)
		}
		ret[n] = struct{}{}
	}
	return ret, nil
}

// SortedStates returns the members of states in increasing order
func SortedStates(states map[int]struct{}) []int {
	ret := make([]int, 0, len(states))
	for s := range states {
		ret = append(ret, s)
	}
	sort.Ints(ret)
	return ret
}
