// SPDX-License-Identifier: MIT
package lexer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"github.com/MoustaphaDev/simple-lexer/token"
)

// Result holds the output of lexing one source.
type Result struct {
	Tokens []token.Token
	Errors Errors

	// Err is set when the pass did not complete.
	Err error
}

// Batch lexing errors.
var (
	ErrBatch    = errors.New("batch lexing failed")
	ErrPanicked = errors.New("recovery from panic")
)

// LexAll lexes independent sources on a pool of Config.PoolSize workers.
//
// Each source gets its own Lexer; results are in source order. Cancelling ctx stops the submission
// of the remaining sources, their Result.Err is set to the context's error.
func LexAll(ctx context.Context, sources []string, opts ...Option) (results []Result, err error) {
	cfg := newConfig(opts)
	results = make([]Result, len(sources))
	if len(sources) < 1 {
		return
	}

	pool, err := ants.NewPool(cfg.PoolSize)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrBatch, err)
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	lexCfg := WithConfig(*cfg)

	for index := range sources {
		if ctxErr := ctx.Err(); ctxErr != nil {
			for rest := index; rest < len(sources); rest++ {
				results[rest].Err = ctxErr
			}
			break
		}

		index := index
		wg.Add(1)
		task := func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[index].Err = fmt.Errorf("%w: %v", ErrPanicked, r)
				}
			}()

			results[index].Tokens, results[index].Errors = New(sources[index], lexCfg).Lex()
		}

		if submitErr := pool.Submit(task); submitErr != nil {
			wg.Done()
			results[index].Err = submitErr
		}
	}
	wg.Wait()

	var failed []error
	for index := range results {
		if results[index].Err != nil {
			failed = append(failed, fmt.Errorf("source %d: %w", index, results[index].Err))
		}
	}
	if len(failed) > 0 {
		err = fmt.Errorf("%w: %w", ErrBatch, errors.Join(failed...))
	}

	if cfg.Debug {
		cfg.Logger.WithFields(logrus.Fields{
			"sources": len(sources),
			"workers": cfg.PoolSize,
			"failed":  len(failed),
		}).Debug("lexer batch done")
	}

	return
}
