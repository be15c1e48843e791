package icons

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hoppxi/iconify/internal/utils"
)

const (
	DefaultInputDir  = "./_transform"
	DefaultOutputDir = "./src/components/icons/svg"
)

var (
	ErrInputDirMissing = errors.New("input directory does not exist")
	ErrNameCollision   = errors.New("component name collision")
)

// FileError reports which step failed for which source file.
type FileError struct {
	File string
	Op   string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.File, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

type Result struct {
	Source    string
	Output    string
	Component string
}

// Report collects the outcome of one TransformAll run.
type Report struct {
	Converted []Result
	Skipped   []string
	Failed    []error
}

// Changed reports whether the run touched the filesystem or hit a failure.
func (r *Report) Changed() bool {
	return len(r.Converted) > 0 || len(r.Failed) > 0
}

type Transformer struct {
	InputDir  string
	OutputDir string
	// KeepGoing continues past per-file failures instead of aborting the run.
	KeepGoing bool
	// StrictNames rejects files whose derived name is not a valid component.
	StrictNames bool
}

func New(inputDir, outputDir string) *Transformer {
	if inputDir == "" {
		inputDir = DefaultInputDir
	}
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	return &Transformer{
		InputDir:    inputDir,
		OutputDir:   outputDir,
		StrictNames: true,
	}
}

// Convert is the pure part of a transformation: file name and markup in,
// output file name and component module out.
func Convert(filename, content string) (outName, module string) {
	name := ComponentName(filename)
	return name + ComponentExt, RenderModule(name, TransformMarkup(content))
}

type job struct {
	source    string
	component string
}

// TransformAll converts every icon in the input directory and deletes each
// source once its component has been written. The directory is listed once
// up front; files that appear later are left for the next run.
func (t *Transformer) TransformAll(ctx context.Context) (*Report, error) {
	jobs, skipped, err := t.plan()
	if err != nil {
		return nil, err
	}

	report := &Report{Skipped: skipped}
	for _, name := range skipped {
		log.Printf("skipped %s", name)
	}
	if len(jobs) == 0 {
		return report, nil
	}

	if err := os.MkdirAll(t.OutputDir, 0o755); err != nil {
		return report, &FileError{File: t.OutputDir, Op: "mkdir", Err: err}
	}

	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res, err := t.transform(j)
		if err != nil {
			if !t.KeepGoing {
				return report, err
			}
			log.Printf("failed %s: %v", j.source, err)
			report.Failed = append(report.Failed, err)
			continue
		}

		log.Printf("converted %s -> %s", res.Source, filepath.Base(res.Output))
		report.Converted = append(report.Converted, res)
	}

	return report, errors.Join(report.Failed...)
}

func (t *Transformer) plan() ([]job, []string, error) {
	entries, err := os.ReadDir(t.InputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrInputDirMissing, t.InputDir)
		}
		return nil, nil, fmt.Errorf("failed to read input directory %s: %w", t.InputDir, err)
	}

	var (
		jobs    []job
		skipped []string
		owners  = make(map[string]string)
		clashes []string
	)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), SourceExt) {
			skipped = append(skipped, entry.Name())
			continue
		}

		name := ComponentName(entry.Name())
		if prev, ok := owners[name]; ok {
			clashes = append(clashes, fmt.Sprintf("%s and %s -> %s", prev, entry.Name(), name+ComponentExt))
			continue
		}
		owners[name] = entry.Name()
		jobs = append(jobs, job{source: entry.Name(), component: name})
	}

	if len(clashes) > 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrNameCollision, strings.Join(clashes, "; "))
	}

	return jobs, skipped, nil
}

func (t *Transformer) transform(j job) (Result, error) {
	if t.StrictNames {
		if err := ValidateComponentName(j.component); err != nil {
			return Result{}, &FileError{File: j.source, Op: "name", Err: err}
		}
	}

	src := filepath.Join(t.InputDir, j.source)
	content, err := os.ReadFile(src)
	if err != nil {
		return Result{}, &FileError{File: j.source, Op: "read", Err: err}
	}

	outName, module := Convert(j.source, string(content))
	out := filepath.Join(t.OutputDir, outName)
	if err := utils.WriteFileAtomic(out, []byte(module), 0o644); err != nil {
		return Result{}, &FileError{File: j.source, Op: "write", Err: err}
	}

	if err := os.Remove(src); err != nil {
		return Result{}, &FileError{File: j.source, Op: "remove", Err: err}
	}

	return Result{Source: j.source, Output: out, Component: j.component}, nil
}
