package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		file string
		want Config
	}{
		{
			file: "testfiles/test.toml",
			want: Config{
				Input:     "testfiles/orca.out",
				Singlets:  map[int]struct{}{0: {}, 1: {}},
				Output:    "results",
				Format:    FORMAT_CSV,
				Sheet:     DEFAULT_SHEET,
				LogLevel:  "debug",
				LogFormat: "text",
			},
		},
		{
			file: "testfiles/test.yaml",
			want: Config{
				Input:     "testfiles/orca.out",
				Singlets:  map[int]struct{}{1: {}, 2: {}},
				Output:    "results.xlsx",
				Format:    FORMAT_XLSX,
				Sheet:     "SOC",
				LogLevel:  "info",
				LogFormat: "text",
				Print:     true,
			},
		},
	}
	for _, test := range tests {
		got, err := LoadConfig(test.file)
		if err != nil {
			t.Fatalf("%s: %v", test.file, err)
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: got %+v, wanted %+v\n", test.file, got, test.want)
		}
	}
}

func TestLoadConfigErrors(t *testing.T) {
	other := filepath.Join(t.TempDir(), "conf.json")
	if err := os.WriteFile(other, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		file string
		want error
	}{
		{"testfiles/bad.toml", ErrInvalidInput},
		{"testfiles/missing.toml", ErrFileNotFound},
		{other, ErrUnknownFormat},
	}
	for _, test := range tests {
		_, err := LoadConfig(test.file)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got %v, wanted %v\n", test.file, err, test.want)
		}
	}
}

func TestReadDocument(t *testing.T) {
	got, err := ReadDocument("testfiles/orca.out")
	if err != nil {
		t.Fatal(err)
	}
	if got != loadOrca(t) {
		t.Errorf("contents differ from testfiles/orca.out\n")
	}
	_, err = ReadDocument("testfiles/nonexistent.out")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("got %v, wanted %v\n", err, ErrFileNotFound)
	}
}
