package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/patricio-ezequiel-hondagneu-roig/yatay/internal"
)

// Exit codes follow sysexits: usage, bad input data, internal failure.
const (
	exitUsage   = 64
	exitStatic  = 65
	exitRuntime = 70
)

const sourceExtension = ".yatay"

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

// config mirrors the optional yatay.yml in the working directory.
// Command-line flags win over it.
type config struct {
	Traza    *bool  `yaml:"traza"`
	Color    *bool  `yaml:"color"`
	Registro string `yaml:"registro"`
}

func loadConfig() config {
	var cfg config
	b, err := os.ReadFile("yatay.yml")
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "No se pudo leer yatay.yml: %v\n", err)
	}
	return cfg
}

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	cfg := loadConfig()

	opts := internal.Options{Trace: true, Color: true}
	if cfg.Traza != nil {
		opts.Trace = *cfg.Traza
	}
	if cfg.Color != nil {
		opts.Color = *cfg.Color
	}
	level := logrus.InfoLevel
	if cfg.Registro == "debug" {
		level = logrus.DebugLevel
	}

	flags, optind, err := getopt.Getopts(args, "dsn")
	if err != nil {
		printUsage()
		return exitUsage
	}
	for _, flag := range flags {
		switch flag.Option {
		case 'd':
			level = logrus.DebugLevel
		case 's':
			opts.Trace = false
		case 'n':
			opts.Color = false
		}
	}
	logrus.SetLevel(level)

	operands := args[optind:]
	switch len(operands) {
	case 0:
		fmt.Println("El intérprete interactivo aún no está implementado.")
		return 0
	case 1:
	default:
		printUsage()
		return exitUsage
	}

	path := canonicalPath(operands[0])
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("No se pudo encontrar el archivo «%s».\n", path)
		return 0
	}

	switch internal.RunSource(string(b), stdPrinter{}, opts) {
	case internal.RunStaticError:
		return exitStatic
	case internal.RunRuntimeError:
		return exitRuntime
	}
	return 0
}

// canonicalPath appends the source extension when the path lacks it.
func canonicalPath(path string) string {
	if strings.HasSuffix(path, sourceExtension) {
		return path
	}
	return path + sourceExtension
}

func printUsage() {
	fmt.Println("Uso: yatay [-d] [-s] [-n] /ruta/al/archivo" + sourceExtension)
}
