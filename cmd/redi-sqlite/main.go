package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/rediwo/redi-sqlite/dsn"
	"github.com/rediwo/redi-sqlite/logger"
	"github.com/rediwo/redi-sqlite/types"
)

const (
	version = "0.1.0"
	usage   = `redi-sqlite CLI - SQLite connection descriptor tool

Usage:
  redi-sqlite <command> [flags] [descriptor]

Commands:
  parse     Parse a descriptor and print the resolved configuration
  canon     Print the canonical URL for a descriptor
  native    Print the native driver DSN for a descriptor
  pragmas   List the pragma names accepted as query parameters
  version   Show version information

Flags:
  --profiles    Path to a YAML profiles file
  --profile     Name of the profile whose descriptor should be used
  --json        Output as JSON
  --log-level   Log verbosity: debug|info|warn|error|none (default: warn)
  --help        Show help message

Examples:
  # Inspect a descriptor
  redi-sqlite parse "sqlite://./myapp.db?mode=rwc&cache=private"

  # Canonical round-trip form
  redi-sqlite canon "sqlite::memory:"

  # DSN for the collaborating driver, pragmas included
  redi-sqlite native "sqlite://app.db?pragma_journal_mode=WAL"

  # Resolve the descriptor from a profiles file
  redi-sqlite parse --profiles=./profiles.yaml --profile=dev
`
)

func main() {
	var (
		profilesPath string
		profileName  string
		asJSON       bool
		logLevel     string
		help         bool
	)

	flag.StringVar(&profilesPath, "profiles", "", "Path to a YAML profiles file")
	flag.StringVar(&profileName, "profile", "", "Profile name to resolve")
	flag.BoolVar(&asJSON, "json", false, "Output as JSON")
	flag.StringVar(&logLevel, "log-level", "warn", "Log verbosity")
	flag.BoolVar(&help, "help", false, "Show help message")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(0)
	}

	command := os.Args[1]

	if command == "version" {
		fmt.Printf("redi-sqlite CLI v%s\n", version)
		os.Exit(0)
	}

	if command == "help" || command == "--help" || command == "-h" {
		flag.Usage()
		os.Exit(0)
	}

	flag.CommandLine.Parse(os.Args[2:])
	if help {
		flag.Usage()
		os.Exit(0)
	}

	l := logger.NewDefaultLogger("redi-sqlite")
	l.SetLevel(logger.ParseLogLevel(logLevel))
	logger.SetGlobalLogger(l)

	switch command {
	case "pragmas":
		runPragmas()
		return
	}

	descriptor, err := resolveDescriptor(flag.Args(), profilesPath, profileName)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	switch command {
	case "parse":
		err = runParse(descriptor, asJSON)
	case "canon":
		err = runCanon(descriptor)
	case "native":
		err = runNative(descriptor)
	default:
		log.Fatalf("Unknown command: %s\n\nRun 'redi-sqlite --help' for usage", command)
	}

	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// resolveDescriptor picks the descriptor either from a named profile or
// from the first positional argument.
func resolveDescriptor(args []string, profilesPath, profileName string) (string, error) {
	if profileName != "" {
		if profilesPath == "" {
			return "", fmt.Errorf("--profile requires --profiles")
		}
		profiles, err := LoadProfiles(profilesPath)
		if err != nil {
			return "", err
		}
		return profiles.Descriptor(profileName)
	}

	if len(args) < 1 {
		return "", fmt.Errorf("descriptor argument required")
	}
	return args[0], nil
}

func runParse(descriptor string, asJSON bool) error {
	config, err := dsn.Parse(descriptor)
	if err != nil {
		return err
	}
	logger.Debug("parsed %q: mode=%s cache=%s", descriptor, config.Mode(), cacheName(config))

	if asJSON {
		out, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("filename:  %s\n", config.Filename)
	fmt.Printf("mode:      %s\n", config.Mode())
	fmt.Printf("in-memory: %v\n", config.InMemory)
	fmt.Printf("cache:     %s\n", cacheName(config))
	fmt.Printf("immutable: %v\n", config.Immutable)
	if config.VFS != "" {
		fmt.Printf("vfs:       %s\n", config.VFS)
	}
	for _, pragma := range config.Pragmas {
		fmt.Printf("pragma:    %s=%s\n", pragma.Name, pragma.Value)
	}
	return nil
}

func runCanon(descriptor string) error {
	config, err := dsn.Parse(descriptor)
	if err != nil {
		return err
	}
	fmt.Println(dsn.BuildURL(config).String())
	return nil
}

func runNative(descriptor string) error {
	config, err := dsn.Parse(descriptor)
	if err != nil {
		return err
	}
	fmt.Println(dsn.NativeDSN(config))
	return nil
}

func runPragmas() {
	for _, name := range dsn.AllowedPragmas() {
		fmt.Println(name)
	}
}

func cacheName(config types.Config) string {
	if config.SharedCache {
		return "shared"
	}
	return "private"
}
