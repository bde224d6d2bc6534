package recipe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssel/state"
)

// Run implements the "build" subcommand: load every recipe file given on the
// command line, build its selectors and write the rendered strings out.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	if cmd.Args().Len() == 0 {
		return errors.New("no recipe file has been specified")
	}

	env.Overwrite = cmd.Bool("overwrite")

	out := os.Stdout
	if dst := cmd.String("output"); len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
		if _, err := os.Stat(dst); err == nil {
			if !env.Overwrite {
				return fmt.Errorf("output file already exists: %s", dst)
			}
			log.Warn("Overwriting existing file", zap.String("file", dst))
		} else if !os.IsNotExist(err) {
			return err
		}
		if out, err = os.Create(dst); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dst, err)
		}
		defer out.Close()
	}

	log.Info("Processing starting", zap.Strings("recipes", cmd.Args().Slice()))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	for _, path := range cmd.Args().Slice() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := processRecipe(path, out, env.Cfg.Build.Format, log); err != nil {
			if env.Cfg.Build.StopOnError {
				return fmt.Errorf("unable to process recipe '%s': %w", path, err)
			}
			log.Error("Unable to process recipe", zap.String("file", path), zap.Error(err))
		}
	}
	return nil
}

// processRecipe builds all selectors from a single recipe file and writes the
// successful results to out. The returned error aggregates every failed
// definition - partial results are written regardless.
func processRecipe(path string, out io.Writer, format string, log *zap.Logger) error {
	r, err := Load(path)
	if err != nil {
		return err
	}

	results, buildErr := r.Build(log)
	for _, res := range results {
		if format == "tsv" {
			fmt.Fprintf(out, "%s\t%s\n", res.Name, res.CSS)
		} else {
			fmt.Fprintln(out, res.CSS)
		}
	}
	log.Info("Recipe processed", zap.String("file", path), zap.Int("selectors", len(results)))
	return buildErr
}
