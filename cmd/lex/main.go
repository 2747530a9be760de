// SPDX-License-Identifier: MIT

// Command lex prints the tokens & diagnostics of source files, or of stdin when no file is given.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/MoustaphaDev/simple-lexer/lexer"
)

const (
	exitDiagnostics = 1
	exitFailure     = 2
)

func main() {
	var (
		debug   = flag.Bool("debug", false, "log every emitted token")
		dump    = flag.Bool("dump", false, "dump tokens with spew instead of one per line")
		workers = flag.Int("workers", lexer.DefaultPoolSize, "number of files lexed concurrently")
	)
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	os.Exit(run(context.Background(), logger, flag.Args(), *debug, *dump, *workers))
}

func run(ctx context.Context, logger *logrus.Logger, paths []string, debug, dump bool, workers int) int {
	names, sources, err := readSources(paths)
	if err != nil {
		logger.WithError(err).Error("failed to read source")
		return exitFailure
	}

	results, err := lexer.LexAll(ctx, sources,
		lexer.WithLogger(logger), lexer.WithDebug(debug), lexer.WithPoolSize(workers))
	if err != nil {
		logger.WithError(err).Error("failed to lex")
		return exitFailure
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	code := 0
	for index, result := range results {
		if dump {
			spew.Fdump(out, result.Tokens)
		} else {
			for _, t := range result.Tokens {
				fmt.Fprintf(out, "%s\t%q\n", t, t.Lexeme(sources[index]))
			}
		}

		for _, e := range result.Errors {
			code = exitDiagnostics
			logger.WithField("kind", e.Kind).Warnf("%s:%s", names[index], e.Format(sources[index]))
		}
	}

	return code
}

// readSources reads every path; stdin is read when paths is empty.
func readSources(paths []string) (names, sources []string, err error) {
	if len(paths) < 1 {
		var data []byte
		if data, err = io.ReadAll(os.Stdin); err != nil {
			return
		}

		return []string{"<stdin>"}, []string{string(data)}, nil
	}

	for _, path := range paths {
		var data []byte
		if data, err = os.ReadFile(path); err != nil {
			err = fmt.Errorf("%s: %w", path, err)
			return
		}

		names = append(names, path)
		sources = append(sources, string(data))
	}

	return
}
