// Command jsondec validates JSON or YAML documents and reports structured
// issues with JSON Pointer paths.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	jsondec "github.com/halvdan/jsondec"
	"github.com/halvdan/jsondec/i18n"
)

var cli struct {
	Path     string `arg:"" optional:"" help:"Input file; reads stdin when omitted."`
	YAML     bool   `help:"Treat input as YAML instead of JSON." short:"y"`
	OnDup    string `name:"on-duplicate" help:"Duplicate key policy." enum:"ignore,warn,error" default:"ignore"`
	MaxDepth int    `help:"Maximum nesting depth (0 = unlimited)."`
	MaxBytes int64  `help:"Maximum input bytes (0 = unlimited)."`
	Lang     string `help:"Message language." enum:"en,ja" default:"en"`
	LintDups bool   `name:"lint-dups" help:"Only scan for duplicate object keys and report them."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("jsondec"),
		kong.Description("Validate JSON or YAML documents and report structured issues."),
		kong.UsageOnError(),
	)
	i18n.SetLanguage(cli.Lang)

	data, err := readInput(cli.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "jsondec:", err)
		os.Exit(1)
	}

	if cli.LintDups {
		os.Exit(lintDups(data))
	}

	var v jsondec.Value
	if cli.YAML {
		v, err = jsondec.FromYAML(data)
	} else {
		opt := jsondec.ParseOpt{
			Strictness: jsondec.Strictness{OnDuplicateKey: severityFrom(cli.OnDup)},
			MaxDepth:   cli.MaxDepth,
			MaxBytes:   cli.MaxBytes,
			WarnSink: func(it jsondec.Issue) {
				fmt.Fprintf(os.Stderr, "warn: %s at %s: %s\n", it.Code, it.Path, it.Message)
			},
		}
		v, err = jsondec.FromBytes(data, opt)
	}
	if err != nil {
		printIssues(err)
		os.Exit(1)
	}
	fmt.Println("ok:", describe(v))
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func lintDups(data []byte) int {
	issues, err := jsondec.DetectDuplicateKeysBytes(data, -1)
	for _, it := range issues {
		fmt.Fprintf(os.Stderr, "%s at %s: %s\n", it.Code, it.Path, it.Message)
	}
	if err != nil {
		printIssues(err)
		return 1
	}
	if len(issues) > 0 {
		return 1
	}
	fmt.Println("ok: no duplicate keys")
	return 0
}

func printIssues(err error) {
	iss, ok := jsondec.AsIssues(err)
	if !ok {
		fmt.Fprintln(os.Stderr, "jsondec:", err)
		return
	}
	for _, it := range iss {
		if it.Hint != "" {
			fmt.Fprintf(os.Stderr, "%s at %s: %s (%s)\n", it.Code, it.Path, it.Message, it.Hint)
			continue
		}
		fmt.Fprintf(os.Stderr, "%s at %s: %s\n", it.Code, it.Path, it.Message)
	}
}

func severityFrom(s string) jsondec.Severity {
	switch s {
	case "warn":
		return jsondec.Warn
	case "error":
		return jsondec.Error
	default:
		return jsondec.Ignore
	}
}

func describe(v jsondec.Value) string {
	switch v.Kind() {
	case jsondec.KindObject:
		return fmt.Sprintf("object with %d fields", v.Len())
	case jsondec.KindArray:
		return fmt.Sprintf("list with %d items", v.Len())
	case jsondec.KindString:
		return "string"
	case jsondec.KindNumber:
		return "float"
	case jsondec.KindBool:
		return "bool"
	default:
		return "null"
	}
}
