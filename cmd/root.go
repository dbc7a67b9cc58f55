// Package cmd implements the wsjtx-adif command line interface.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"github.com/hessu/logconvert-wsjtx-adif/internal/config"
	"github.com/hessu/logconvert-wsjtx-adif/internal/convert"
	"github.com/hessu/logconvert-wsjtx-adif/internal/model"
)

var (
	flagMyCall string
	flagTZ     string
	flagIn     string
	flagOut    string
	flagPower  int
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:   "wsjtx-adif",
	Short: "Convert a WSJT-X Fox mode log file to ADIF",
	Long: `wsjtx-adif reads a WSJT-X .txt log file written in Fox mode, detects the
completed QSOs from the Sel/Rx exchange itself (ignoring WSJT-X's own logging
decisions), and writes one ADIF record per contact.

Timestamps are converted from the log's timezone (--tz) to UTC for ADIF.
Station defaults (mycall, tz, power) can be kept in ~/.wsjtx-adif.yaml;
flags override the file.`,
	Args:         cobra.NoArgs,
	RunE:         runConvert,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagMyCall, "mycall", "", "My callsign (required unless set in the config file)")
	rootCmd.Flags().StringVar(&flagTZ, "tz", "", "Timezone of log timestamps (IANA name), defaults to UTC")
	rootCmd.Flags().StringVar(&flagIn, "in", "", "Input WSJT-X log file (.gz accepted), defaults to stdin")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "Output ADIF file, defaults to stdout")
	rootCmd.Flags().IntVar(&flagPower, "power", 0, "My transmitter power in watts, for log rows")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Station config file, defaults to ~/.wsjtx-adif.yaml")
}

func runConvert(cmd *cobra.Command, args []string) error {
	station, err := loadStation(flagConfig)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(station)
	if err != nil {
		return err
	}

	in, err := openInput(flagIn)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := openOutput(flagOut)
	if err != nil {
		return err
	}

	if err := convert.New(cfg).Run(in, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// loadStation reads the station defaults file. When no --config is given the
// default path is tried and silently skipped if the home directory is unknown.
func loadStation(path string) (config.Station, error) {
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return config.Station{}, nil
		}
		path = defaultPath
	}
	return config.Load(path)
}

// resolveConfig merges flags over station defaults and validates the result.
// The timezone is resolved once here, before any input line is read.
func resolveConfig(station config.Station) (model.RunConfig, error) {
	mycall := flagMyCall
	if mycall == "" {
		mycall = station.MyCall
	}
	if mycall == "" {
		return model.RunConfig{}, fmt.Errorf("--mycall is required")
	}

	tz := flagTZ
	if tz == "" {
		tz = station.Timezone
	}
	loc := time.UTC
	if tz != "" {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return model.RunConfig{}, fmt.Errorf("unknown timezone %q: %w", tz, err)
		}
	}

	power := flagPower
	if power == 0 {
		power = station.PowerWatts
	}
	if power < 0 {
		return model.RunConfig{}, fmt.Errorf("--power must be a positive integer")
	}

	return model.RunConfig{
		MyCall:     strings.ToUpper(mycall),
		Location:   loc,
		PowerWatts: power,
	}, nil
}

// openInput opens the log source: stdin by default, a file when --in is
// given, gunzipped transparently when the name ends in .gz (rotated logs).
func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening gzip input %s: %w", path, err)
	}
	return &gzipInput{zr: zr, f: f}, nil
}

// gzipInput closes both the decompressor and the underlying file.
type gzipInput struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipInput) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipInput) Close() error {
	if err := g.zr.Close(); err != nil {
		g.f.Close()
		return err
	}
	return g.f.Close()
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening output: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
