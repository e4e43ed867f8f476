package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ZacxDev/splugh/config"
	"github.com/ZacxDev/splugh/render"
)

// dirExistsError maps to exit code 2: the output directory is in the
// way and --force was not given.
type dirExistsError struct {
	dir string
}

func (e *dirExistsError) Error() string {
	return fmt.Sprintf("%s already exists. Refusing to operate.", e.dir)
}

func exitCode(err error) int {
	var dirErr *dirExistsError
	if errors.As(err, &dirErr) {
		return 2
	}
	return 1
}

func runGenerate(source string) error {
	srcPath, err := filepath.Abs(source)
	if err != nil {
		return errors.WithStack(err)
	}

	format := fileFormat
	if format == "" {
		format, err = config.FormatFromExt(filepath.Ext(srcPath))
		if err != nil {
			return err
		}
	}

	// Resolve the parser up front so a bad format token can never
	// delete an existing output directory.
	parse, err := config.ParserFor(format)
	if err != nil {
		return err
	}

	outDir := outputDirectory
	if !filepath.IsAbs(outDir) {
		wd, err := os.Getwd()
		if err != nil {
			return errors.WithStack(err)
		}
		outDir = filepath.Join(wd, outDir)
	}

	if _, err := os.Stat(outDir); err == nil {
		if !force {
			return &dirExistsError{dir: outDir}
		}
		if err := os.RemoveAll(outDir); err != nil {
			return errors.Wrap(err, "removing output directory")
		}
	}

	file, err := os.Open(srcPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	cfg, err := parse(file)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	renderer := &render.Renderer{MinifyJS: minify}
	if err := renderer.Write(cfg, outDir); err != nil {
		return err
	}

	fmt.Printf("Generated landing page in %s\n", outDir)
	return nil
}
