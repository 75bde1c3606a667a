// Command formcheck validates account submissions from a YAML file with the
// binder and prints the localized result of each one.
//
//	formcheck [-locale de] submissions.yaml
//
// Settings come from FORMCHECK_LOCALE, FORMCHECK_LOG_LEVEL,
// FORMCHECK_LOG_FORMAT and FORMCHECK_TRANSLATIONS (a directory of extra
// catalogs), optionally through a .env file. The exit status is 1 when any
// submission is invalid and 2 on usage or setup errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/databinder/pkg/i18n"
	"github.com/dmitrymomot/databinder/pkg/logger"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

var exitFunc = os.Exit

type submissionKey struct{}

type input struct {
	Submissions []Submission `yaml:"submissions"`
}

func main() {
	exitFunc(run(context.Background(), os.Args[1:], nil, os.Stdout, os.Stderr))
}

// run executes the command. A nil environ reads the process environment.
func run(ctx context.Context, args []string, environ map[string]string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("formcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	localeFlag := fs.String("locale", "", "Accept-Language style locale, overrides FORMCHECK_LOCALE")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: formcheck [-locale tag] submissions.yaml")
		return exitUsage
	}

	cfg, err := loadConfig(environ)
	if err != nil {
		fmt.Fprintf(stderr, "formcheck: %v\n", err)
		return exitUsage
	}
	if *localeFlag != "" {
		cfg.Locale = *localeFlag
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "formcheck: %v\n", err)
		return exitUsage
	}

	submissions, err := readSubmissions(fs.Arg(0))
	if err != nil {
		log.ErrorContext(ctx, "cannot read submissions", logger.Error(err))
		return exitUsage
	}

	tr, err := newTranslator(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "cannot load translations", logger.Error(err))
		return exitUsage
	}

	locale := resolveLocale(cfg.Locale, tr)
	ctx = i18n.WithLocale(ctx, locale)

	form, err := newAccountForm(locale, tr, log)
	if err != nil {
		log.ErrorContext(ctx, "cannot build form", logger.Error(err))
		return exitUsage
	}

	invalid := 0
	for i, s := range submissions {
		n := i + 1
		sctx := context.WithValue(ctx, submissionKey{}, n)

		_, errs := form.check(s)
		if errs.IsEmpty() {
			log.DebugContext(sctx, "submission accepted")
			fmt.Fprintf(stdout, "%s: ok\n", describe(s, n))
			continue
		}

		invalid++
		log.InfoContext(sctx, "submission rejected", logger.Count(len(errs)))
		fmt.Fprintf(stdout, "%s: invalid\n", describe(s, n))
		for _, ve := range errs {
			fmt.Fprintf(stdout, "  %s\n", ve.Message)
		}
	}

	fmt.Fprintf(stdout, "%d checked, %d invalid\n", len(submissions), invalid)
	if invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

var errNoSubmissions = errors.New("no submissions found")

func readSubmissions(path string) ([]Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var in input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(in.Submissions) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errNoSubmissions)
	}
	return in.Submissions, nil
}
