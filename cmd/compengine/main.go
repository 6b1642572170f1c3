// Package main provides the compengine command line interface.
//
// compengine compresses and decompresses files with the Huffman, LZSS and
// DCT codecs and reports sizes, ratio and timing for each file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/op/go-logging"

	"github.com/cocosip/go-compengine/codec"
	"github.com/cocosip/go-compengine/comparison"
	"github.com/cocosip/go-compengine/config"
	"github.com/cocosip/go-compengine/engine"
	"github.com/cocosip/go-compengine/lzss"
)

const (
	progName = "compengine"
	version  = "0.3.0"
)

var log = logging.MustGetLogger("compengine")

func startLogging(w io.Writer) logging.LeveledBackend {
	backend := logging.NewLogBackend(w, progName+": ", 0)
	formatSpec := "%{level:-8s} %{module:-20s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	return leveled
}

type options struct {
	decompress    bool
	output        string
	folder        bool
	compare       bool
	debug         bool
	exampleConfig bool
	version       bool
}

func (o *options) register(fs *flag.FlagSet) {
	fs.BoolVar(&o.decompress, "d", false, "Decompress (default is compress)")
	fs.StringVar(&o.output, "o", "", "Output path, only with a single input")
	fs.BoolVar(&o.folder, "folder", false, "Treat inputs as folders")
	fs.BoolVar(&o.compare, "compare", false, "Compare all codecs and reference compressors, write nothing")
	fs.BoolVar(&o.debug, "debug", false, "Log at DEBUG level")
	fs.BoolVar(&o.exampleConfig, "example-config", false, "Print an example compengine.conf and quit")
	fs.BoolVar(&o.version, "version", false, "Print the version and quit")
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "%s %s: Huffman, LZSS and DCT file compression\n", progName, version)
	fmt.Fprintln(w, "=================================================")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s [options] <file>...            # compress\n", progName)
	fmt.Fprintf(w, "  %s -d [options] <file>...         # decompress\n", progName)
	fmt.Fprintf(w, "  %s -compare <file>...             # compare codecs\n", progName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  huffman  <file>.huff, decompressed to <base>_DC<ext>")
	fmt.Fprintln(w, "  lzss     <file>.lzss, decompressed to <base> (or <file>.orig)")
	fmt.Fprintln(w, "  dct      <file>.dct, decompressed to <file>.dct.pgm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status:
// 0 on success, 1 if any file failed, 2 on usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	leveled := startLogging(stderr)

	var opts options
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts.register(fs)

	cfg, err := config.Parse(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(stdout, fs)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	switch {
	case opts.version:
		fmt.Fprintf(stdout, "%s %s\n", progName, version)
		return 0
	case opts.exampleConfig:
		fmt.Fprint(stdout, config.ExampleConfigurationFile)
		return 0
	}

	level, _ := cfg.LogLevel()
	if opts.debug {
		level = logging.DEBUG
	}
	leveled.SetLevel(level, "")
	log.Debugf("configuration: %+v", cfg)

	if fs.NArg() == 0 {
		printUsage(stderr, fs)
		return 2
	}
	if opts.output != "" && fs.NArg() > 1 {
		fmt.Fprintln(stderr, "Error: -o needs exactly one input")
		return 2
	}

	algo, _ := cfg.AlgorithmValue()
	lz, err := lzss.NewCodecWithParams(cfg.LZSSParams())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	eng := engine.New(engine.WithCodec(lz))
	if err := eng.SetDefault(algo); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.compare {
		return compare(eng, fs.Args(), stdout, stderr)
	}

	status := 0
	for _, path := range fs.Args() {
		if !process(eng, &opts, path, stdout, stderr) {
			status = 1
		}
	}
	return status
}

// process runs one file through the engine and prints a summary
func process(eng *engine.Engine, opts *options, path string, stdout, stderr io.Writer) bool {
	algo := eng.Default()
	c, err := eng.Registry().Lookup(algo)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s: %v\n", path, err)
		return false
	}

	var (
		res codec.Result
		out = opts.output
	)
	start := time.Now()
	switch {
	case opts.folder:
		res = eng.CompressFolder(algo, path)
	case opts.decompress:
		if out == "" {
			out = engine.DecompressedPath(c, path)
		}
		res = eng.DecompressFile(algo, path, out)
	default:
		if out == "" {
			out = engine.CompressedPath(c, path)
		}
		res = eng.CompressFile(algo, path, out)
	}
	elapsed := time.Since(start)

	if !res.OK() {
		fmt.Fprintf(stderr, "Error: %s: %s (code %d)\n", path, codec.CodeText(res.Error), res.Error)
		return false
	}

	fmt.Fprintf(stdout, "Input:       %s (%d bytes)\n", path, res.BytesIn)
	fmt.Fprintf(stdout, "Output:      %s (%d bytes)\n", out, res.BytesOut)
	fmt.Fprintf(stdout, "Ratio:       %.3f (%s)\n", res.Ratio(), algo)
	fmt.Fprintf(stdout, "Time:        %s\n", elapsed.Round(time.Microsecond))
	return true
}

func compare(eng *engine.Engine, paths []string, stdout, stderr io.Writer) int {
	status := 0
	for _, path := range paths {
		r, err := comparison.RunFile(path, eng.Registry().List())
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			status = 1
			continue
		}
		if _, err := r.WriteTo(stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout)
	}
	return status
}
