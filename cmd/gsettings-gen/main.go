// gsettings-gen compiles a GSettings-style XML schema into a typed Go
// settings wrapper: one getter/setter pair per key, a closed variant type
// per choice-constrained key, and change-subscription hooks, all delegating
// to the gsettings runtime store. It is meant to run as a pre-build step,
// typically through go:generate.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vhdirk/gsettings-gen/internal/gen"
	"github.com/vhdirk/gsettings-gen/internal/schema"
)

const version = "0.1.0"

// schemaDirEnv names extra schema search directories, colon-separated.
const schemaDirEnv = "GSETTINGS_GEN_SCHEMA_DIR"

// options is the tool configuration. Values come from an optional TOML
// file, overridden by any flag set on the command line.
type options struct {
	File           string   `toml:"file"`
	ID             string   `toml:"id"`
	Output         string   `toml:"output"`
	Package        string   `toml:"package"`
	SkipKeys       []string `toml:"skip-keys"`
	SkipSignatures []string `toml:"skip-signatures"`
	SchemaDirs     []string `toml:"schema-dirs"`
}

func main() {
	var (
		opts        options
		flagOpts    options
		skipKeysCSV string
		skipSigsCSV string
		dirsCSV     string
		configPath  string
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&flagOpts.File, "file", "", "Path to the .gschema.xml document (omit to search schema dirs)")
	flag.StringVar(&flagOpts.File, "f", "", "Path to the .gschema.xml document (shorthand)")
	flag.StringVar(&flagOpts.ID, "id", "", "Schema id to compile (optional when the document declares one schema)")
	flag.StringVar(&flagOpts.Output, "o", "", "Output file (omit for stdout)")
	flag.StringVar(&flagOpts.Package, "pkg", "", "Package name of the generated file (default: settings)")
	flag.StringVar(&skipKeysCSV, "skip-key", "", "Comma-separated key names to skip")
	flag.StringVar(&skipSigsCSV, "skip-signature", "", "Comma-separated type signatures to skip")
	flag.StringVar(&dirsCSV, "schema-dir", "", "Comma-separated extra directories to search for schema files")
	flag.StringVar(&configPath, "config", "", "Optional TOML file providing the same options as the flags")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging to stderr")
	flag.BoolVar(&showVersion, "version", false, "Show version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("gsettings-gen %s\n", version)
		os.Exit(0)
	}

	if configPath != "" {
		if _, err := toml.DecodeFile(configPath, &opts); err != nil {
			fatalf(2, "config error: %v", err)
		}
	}

	// Flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file", "f":
			opts.File = flagOpts.File
		case "id":
			opts.ID = flagOpts.ID
		case "o":
			opts.Output = flagOpts.Output
		case "pkg":
			opts.Package = flagOpts.Package
		case "skip-key":
			opts.SkipKeys = splitCSV(skipKeysCSV)
		case "skip-signature":
			opts.SkipSignatures = splitCSV(skipSigsCSV)
		case "schema-dir":
			opts.SchemaDirs = splitCSV(dirsCSV)
		}
	})

	if opts.File == "" {
		file, err := discoverSchemaFile(opts.ID, opts.SchemaDirs)
		if err != nil {
			fatalf(2, "schema discovery: %v", err)
		}
		opts.File = file
		logVerbose(verbose, "discovered schema file %s", opts.File)
	}

	if err := run(opts, verbose); err != nil {
		fatalf(1, "%v", err)
	}
}

func run(opts options, verbose bool) error {
	data, err := os.ReadFile(opts.File)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	doc, err := schema.Parse(data, opts.ID)
	if err != nil {
		return fmt.Errorf("parse %s: %w", opts.File, err)
	}
	logVerbose(verbose, "schema %s: %d keys", doc.SchemaID, len(doc.Keys))

	code, err := gen.Generate(doc, gen.Options{
		Package:        opts.Package,
		Source:         filepath.Base(opts.File),
		SkipKeys:       opts.SkipKeys,
		SkipSignatures: opts.SkipSignatures,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if opts.Output == "" {
		_, err := os.Stdout.Write(code)
		return err
	}

	if dir := filepath.Dir(opts.Output); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(opts.Output, code, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logVerbose(verbose, "wrote %s", opts.Output)
	return nil
}

// discoverSchemaFile searches the schema-dir environment variable, the
// configured directories, and the working directory for a *.gschema.xml
// file declaring the target schema id. With an empty id, discovery only
// succeeds when exactly one schema file is found.
func discoverSchemaFile(schemaID string, extraDirs []string) (string, error) {
	var dirs []string
	if env := os.Getenv(schemaDirEnv); env != "" {
		dirs = append(dirs, filepath.SplitList(env)...)
	}
	dirs = append(dirs, extraDirs...)
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}

	var candidates []string
	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*.gschema.xml"))
		if err != nil {
			continue
		}
		candidates = append(candidates, matches...)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no *.gschema.xml found in %s", strings.Join(dirs, ", "))
	}

	if schemaID == "" {
		if len(candidates) == 1 {
			return candidates[0], nil
		}
		return "", fmt.Errorf("%d schema files found, specify -file or -id", len(candidates))
	}

	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		ids, err := schema.ListSchemaIDs(data)
		if err != nil {
			continue
		}
		for _, id := range ids {
			if id == schemaID {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("no schema file declares id %q", schemaID)
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func logVerbose(verbose bool, format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[info] "+format+"\n", args...)
	}
}

func fatalf(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[error] "+format+"\n", args...)
	os.Exit(code)
}
