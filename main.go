package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Flags
var (
	configFile = flag.String("config", "",
		"TOML or YAML file providing default settings")
	input = flag.String("input", "",
		"ORCA output file to read, may also be given as an argument")
	singlets = flag.String("singlets", "",
		"comma-separated singlet states to keep, e.g. 0,1,6")
	output = flag.String("o", "", "name of the report to write")
	format = flag.String("format", "",
		"report format: xlsx, csv or text")
	sheet      = flag.String("sheet", "", "worksheet name for xlsx output")
	logLevel   = flag.String("log", "", "log level: debug, info, warn or error")
	logFormat  = flag.String("logfmt", "", "log format: text or json")
	debug      = flag.Bool("debug", false, "shorthand for -log debug")
	printTable = flag.Bool("print", false,
		"also write the report to stdout")
)

// configure layers the flags over the config file, if any, over the
// defaults
func configure(args []string) (conf Config, err error) {
	if *configFile != "" {
		conf, err = LoadConfig(*configFile)
	} else {
		conf, err = DefaultRawConf().ToConfig()
	}
	if err != nil {
		return
	}
	if len(args) >= 1 {
		conf.Input = args[0]
	}
	for _, f := range []struct {
		dst *string
		val string
	}{
		{&conf.Input, *input},
		{&conf.Output, *output},
		{&conf.Format, *format},
		{&conf.Sheet, *sheet},
		{&conf.LogLevel, *logLevel},
		{&conf.LogFormat, *logFormat},
	} {
		if f.val != "" {
			*f.dst = f.val
		}
	}
	if *debug {
		conf.LogLevel = "debug"
	}
	if *printTable {
		conf.Print = true
	}
	if *singlets != "" {
		conf.Singlets, err = ParseStates(*singlets)
	}
	return
}

// run collects anything missing from conf from in, extracts the
// requested couplings and writes the report. Empty results are
// reported on out and are not errors. Panics are recovered and
// returned as errors.
func run(conf Config, in io.Reader, out io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected error: %v", r)
		}
	}()
	log := WithComponent("run")
	r := bufio.NewReader(in)
	if conf.Input == "" {
		conf.Input, err = Prompt(r, out,
			"Please enter the name of the ORCA output file: ")
		if err != nil {
			return err
		}
	}
	if conf.Singlets == nil {
		var ans string
		ans, err = Prompt(r, out,
			"Enter the desired singlet states, separated by commas (e.g., 0,1,6): ")
		if err != nil {
			return err
		}
		if conf.Singlets, err = ParseStates(ans); err != nil {
			return err
		}
	}
	if conf.Output == "" {
		conf.Output, err = Prompt(r, out,
			"Enter the name for the output file (e.g., results.xlsx): ")
		if err != nil {
			return err
		}
		if conf.Output == "" {
			conf.Output = TrimExt(filepath.Base(conf.Input)) + "_socme"
		}
	}
	log.Info("processing", "input", conf.Input,
		"singlets", SortedStates(conf.Singlets))

	doc, err := ReadDocument(conf.Input)
	if err != nil {
		return err
	}
	rep, err := Process(doc, conf.Singlets)
	switch {
	case errors.Is(err, ErrNoTable):
		fmt.Fprintln(out,
			"Could not find or extract the SOCME table from the file content.")
		return nil
	case errors.Is(err, ErrNoMatches):
		fmt.Fprintln(out,
			"No couplings found for the specified singlet states.")
		return nil
	case err != nil:
		return err
	}
	log.Info("report built", "rows", len(rep.Rows))
	if conf.Print {
		if err := WriteTable(out, rep); err != nil {
			return err
		}
	}
	name, err := Export(conf.Output, conf.Format, conf.Sheet, rep)
	if err != nil {
		return fmt.Errorf("writing %q: %w", name, err)
	}
	fmt.Fprintf(out, "\nSuccess! Data has been saved to '%s'.\n", name)
	return nil
}

// exitCode maps the result of run to the process exit status. Empty
// results are not errors and exit 0; any other error has already been
// reported on stderr and exits 1 so scripts can detect it.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

// main never panics out: every failure is printed as "Error: ..." and
// the process exits with exitCode
func main() {
	flag.Parse()
	conf, err := configure(flag.Args())
	if err == nil {
		SetupLogger(conf.LogLevel, conf.LogFormat, os.Stderr)
		err = run(conf, os.Stdin, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
	}
	os.Exit(exitCode(err))
}
