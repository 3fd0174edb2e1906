// cmd/scaffold/generate.go
package main

import (
	"fmt"
	"os"

	"github.com/gregvogt/Scaffold/internal/env"
	"github.com/gregvogt/Scaffold/internal/prompt"
	"github.com/gregvogt/Scaffold/internal/resolve"
	"github.com/gregvogt/Scaffold/internal/secret"
	"github.com/gregvogt/Scaffold/internal/template"
	"github.com/gregvogt/Scaffold/internal/ui"
	"gopkg.in/yaml.v3"
)

const defaultOutput = ".env"

// progress is implemented by prompters that render a question counter.
// The scripted prompter used in tests does not.
type progress interface {
	SetTotal(n int)
	Advance()
}

func runGenerate() error {
	ui.Header(fmt.Sprintf("Parsing file: %s", filenameFlag))

	vars, err := loadTemplate(filenameFlag)
	if err != nil {
		return err
	}
	if len(vars) == 0 {
		ui.Info("No variables declared in " + filenameFlag)
		return nil
	}
	if debugFlag {
		if err := dumpVariables(vars); err != nil {
			return err
		}
	}

	terminal := prompt.NewTerminal()
	return generate(vars, terminal, terminal, env.MaxSize())
}

// generate drives the interactive half of a run: resolve every variable,
// then place the result. The prompter and confirmer come in as
// capabilities so the whole flow runs against a scripted stand-in.
func generate(vars []template.Variable, prompter prompt.Prompter, confirmer prompt.Confirmer, limit int) error {
	counter, hasCounter := prompter.(progress)
	if hasCounter {
		counter.SetTotal(len(vars))
	}

	resolver := resolve.New(prompter, secret.NewCryptoGenerator())

	var resolved env.Env
	for _, v := range vars {
		value, err := resolver.Resolve(v)
		if err != nil {
			return err
		}
		resolved = append(resolved, env.Pair{Key: v.Key, Value: value})
		if hasCounter {
			counter.Advance()
		}
	}

	content := resolved.Bytes()
	ui.Info(sizeReport(len(content), limit))
	if len(content) > limit {
		ui.Warn(fmt.Sprintf("The environment file size (%d bytes) exceeds the system's max allocatable size (%d bytes)", len(content), limit))
		ui.Warn("Continuing may result in undefined behavior in some shells or applications")
		ok, err := confirmer.Confirm("Would you like to continue anyway?")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("aborted: reduce the number or size of environment variables")
		}
	}

	path, err := prompter.Ask("Output filename", nil, defaultOutput)
	if err != nil {
		return err
	}
	if path == "" {
		path = defaultOutput
	}

	if _, err := os.Stat(path); err == nil {
		ok, err := confirmer.Confirm(fmt.Sprintf("File %s exists. Overwrite?", path))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("aborted: %s left untouched", path)
		}
	}

	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	ui.Result(fmt.Sprintf("Environment file written to %s", path))
	return nil
}

// sizeReport is printed on every run, over the limit or not.
func sizeReport(size, limit int) string {
	return fmt.Sprintf("Total environment file size: %d bytes (system max: %d bytes)", size, limit)
}

func loadTemplate(path string) ([]template.Variable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return template.Parse(data)
}

func dumpVariables(vars []template.Variable) error {
	data, err := yaml.Marshal(vars)
	if err != nil {
		return fmt.Errorf("failed to dump variables: %w", err)
	}
	fmt.Println()
	fmt.Print(string(data))
	return nil
}
