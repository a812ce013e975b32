package main

import "testing"

func TestEnsureExt(t *testing.T) {
	tests := []struct {
		name, ext, want string
	}{
		{"results", ".xlsx", "results.xlsx"},
		{"results.xlsx", ".xlsx", "results.xlsx"},
		{"results.csv", ".xlsx", "results.csv.xlsx"},
	}
	for _, test := range tests {
		got := EnsureExt(test.name, test.ext)
		if got != test.want {
			t.Errorf("got %v, wanted %v\n", got, test.want)
		}
	}
}

func TestTrimExt(t *testing.T) {
	got := TrimExt("calc/ethylene.out")
	want := "calc/ethylene"
	if got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b float64
		want bool
	}{
		{
			a:    1.0000000000000001,
			b:    1.0,
			want: true,
		},
		{
			a:    1.1,
			b:    1.0,
			want: false,
		},
	}
	for _, test := range tests {
		got := Equal(test.a, test.b)
		if got != test.want {
			t.Errorf("got %v, wanted %v\n", got, test.want)
		}
	}
}
