// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Command deflatestream is a small gzip/gunzip-alike exercising the
// library's GZIP surface adapters end to end.
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/streamkit-go/deflatestream"
)

func main() {
	log := logrus.New()

	app := &cli.App{
		Name:  "deflatestream",
		Usage: "compress or decompress a GZIP stream",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "decompress",
				Aliases: []string{"d"},
				Usage:   "decompress the input (stdin or the file argument) instead of compressing it",
			},
			&cli.IntFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "compression level: 0 (none), 1 (fast), 6 (default), 9 (best)",
				Value:   int(deflatestream.DefaultCompression),
			},
		},
		Action: func(c *cli.Context) error {
			return run(log, c.Bool("decompress"), deflatestream.Level(c.Int("level")), c.Args().First())
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Error("deflatestream failed")
		os.Exit(1)
	}
}

func run(log *logrus.Logger, decompress bool, level deflatestream.Level, path string) error {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	if decompress {
		log.Debug("decompressing stream")
		r, err := deflatestream.NewGzipReader(in)
		if err != nil {
			return err
		}
		defer r.Close()
		_, err = io.Copy(os.Stdout, r)
		return err
	}

	log.WithField("level", level).Debug("compressing stream")
	w, err := deflatestream.NewGzipWriterLevel(os.Stdout, level)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, in); err != nil {
		return err
	}
	return w.Close()
}
