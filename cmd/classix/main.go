package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/hengadev/classix"
)

func main() {
	// A missing .env file is not an error; the process environment still applies.
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 2
	}

	var err error
	command := args[0]
	switch command {
	case "caesar", "rot1", "rot13", "a1z26", "vigenere", "hill":
		err = cipherCommand(command, args[1:], stdin, stdout, stderr)
	case "keygen":
		err = keygenCommand(args[1:], stdout, stderr)
	case "batch":
		err = batchCommand(args[1:], stdout, stderr)
	case "version":
		fmt.Fprintln(stdout, classix.VersionInfo())
		return 0
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "%s failed: %v\n", command, err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: classix <command> [options] [text]\n")
	fmt.Fprintf(w, "\nCommands:\n")
	fmt.Fprintf(w, "  caesar    Shift letters by a fixed amount (default 3)\n")
	fmt.Fprintf(w, "  rot1      Shift letters by one\n")
	fmt.Fprintf(w, "  rot13     Shift letters by thirteen\n")
	fmt.Fprintf(w, "  a1z26     Replace letters with their alphabet positions\n")
	fmt.Fprintf(w, "  vigenere  Encrypt with a repeating keyword\n")
	fmt.Fprintf(w, "  hill      Encrypt with a square key matrix\n")
	fmt.Fprintf(w, "  keygen    Generate a Vigenère or Hill key\n")
	fmt.Fprintf(w, "  batch     Run the jobs listed in a YAML file\n")
	fmt.Fprintf(w, "  version   Show version information\n")
	fmt.Fprintf(w, "\nText is read from the remaining arguments, or from stdin when there are none.\n")
	fmt.Fprintf(w, "Settings come from CLASSIX_* environment variables and an optional .env file.\n")
	fmt.Fprintf(w, "Run 'classix <command> -h' for help on a specific command.\n")
}
