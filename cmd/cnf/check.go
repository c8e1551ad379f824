package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/heliataromi/Chomsky-normal-form/spec"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Check a grammar definition and print a summary of it",
		Example: `  cnf check grammar.cnf`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCheck,
	}
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) (retErr error) {
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
		tmpDirPath, err = os.MkdirTemp("", "cnf-check-*")
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

	return writeSummary(os.Stdout, gram.Describe())
}

const summaryTemplate = `# Grammar{{ if .Name }} {{ .Name }}{{ end }}

start variable: {{ .Start }}
{{ len .Variables }} variables: {{ join .Variables " " }}
{{ len .Terminals }} terminals: {{ join .Terminals " " }}

# Rules
{{ range .Rules }}
{{ printRule . }}
{{- end }}
`

func writeSummary(w io.Writer, desc *spec.Description) error {
	fns := template.FuncMap{
		"join": strings.Join,
		"printRule": func(rule *spec.Rule) string {
			alts := make([]string, len(rule.Alternatives))
			for i, alt := range rule.Alternatives {
				alts[i] = strings.Join(alt, "")
			}
			return rule.LHS + " → " + strings.Join(alts, "|")
		},
	}

	tmpl, err := template.New("summary").Funcs(fns).Parse(summaryTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, desc)
}
