package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	verr "github.com/heliataromi/Chomsky-normal-form/error"
	"github.com/heliataromi/Chomsky-normal-form/grammar"
	"github.com/heliataromi/Chomsky-normal-form/spec"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var convertFlags = struct {
	output *string
	json   *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "convert",
		Short:   "Convert a grammar into Chomsky normal form",
		Example: `  cnf convert grammar.cnf -o converted.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runConvert,
	}
	convertFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	convertFlags.json = cmd.Flags().Bool("json", false, "write the converted grammar as JSON instead of rule lines")
	rootCmd.AddCommand(cmd)
}

func runConvert(cmd *cobra.Command, args []string) (retErr error) {
	var tmpDirPath string
	defer func() {
		if tmpDirPath == "" {
			return
		}
		os.RemoveAll(tmpDirPath)
	}()

	var grmPath string
	if len(args) > 0 {
		grmPath = args[0]
	}
	defer func() {
		if retErr != nil {
			annotateSpecErrors(retErr, grmPath, len(args) > 0)
		}
	}()

	if grmPath == "" {
		var err error
		tmpDirPath, err = os.MkdirTemp("", "cnf-convert-*")
		if err != nil {
			return err
		}

		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}

		grmPath = filepath.Join(tmpDirPath, "stdin.cnf")
		err = os.WriteFile(grmPath, src, 0600)
		if err != nil {
			return err
		}
	}

	gram, err := readGrammar(grmPath)
	if err != nil {
		return err
	}

	report, err := grammar.Normalize(gram, grammar.EnableReporting())
	if err != nil {
		return err
	}
	logReport(report)

	err = writeGrammar(gram, *convertFlags.output, *convertFlags.json)
	if err != nil {
		return fmt.Errorf("Cannot write an output file: %w", err)
	}

	return nil
}

func readGrammar(path string) (*grammar.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the grammar file %s: %w", path, err)
	}
	defer f.Close()

	ast, err := spec.Parse(f)
	if err != nil {
		return nil, err
	}

	b := grammar.GrammarBuilder{
		AST: ast,
	}
	return b.Build()
}

// annotateSpecErrors attaches the source path to positioned errors so the
// error text can echo the offending line. Errors from piped input carry
// "stdin" as their source name but keep the temporary file path for the
// echo.
func annotateSpecErrors(retErr error, grmPath string, fromFile bool) {
	var specErrs verr.SpecErrors
	switch err := retErr.(type) {
	case verr.SpecErrors:
		specErrs = err
	case *verr.SpecError:
		specErrs = verr.SpecErrors{err}
	default:
		return
	}
	for _, err := range specErrs {
		err.FilePath = grmPath
		if fromFile {
			err.SourceName = grmPath
		} else {
			err.SourceName = "stdin"
		}
	}
}

func writeGrammar(gram *grammar.Grammar, path string, asJSON bool) error {
	var w io.Writer
	if path != "" {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	if asJSON {
		b, err := json.Marshal(gram.Describe())
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%v\n", string(b))
		return nil
	}

	fmt.Fprintf(w, "%v\n", gram)
	return nil
}

func logReport(report *spec.Report) {
	logger := commonlog.GetLogger("cnf")
	for _, stage := range report.Stages {
		logger.Infof("%v: %v variables, %v productions", stage.Name, stage.VariableCount, stage.ProductionCount)
		logger.Debugf("%v:\n%v", stage.Name, strings.Join(stage.Rules, "\n"))
	}
}
