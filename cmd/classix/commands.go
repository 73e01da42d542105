package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/openlyinc/pointy"

	"github.com/hengadev/classix"
)

// newEncoder builds the encoder shared by every command from CLASSIX_* variables.
var newEncoder = func() (*classix.Encoder, error) {
	cfg, err := classix.LoadConfigFromEnvironment()
	if err != nil {
		return nil, err
	}
	return classix.NewFromConfig(cfg)
}

// cipherFlags holds the flags registered for one cipher command. Flags that do not apply to
// the cipher stay nil.
type cipherFlags struct {
	decrypt     *bool
	cyrillic    *bool
	ignoreCase  *bool
	shift       *int
	key         *string
	generateKey *bool
	dimension   *int
	words       *int
}

func newCipherFlagSet(cipher classix.Cipher, stderr io.Writer) (*flag.FlagSet, *cipherFlags) {
	fs := flag.NewFlagSet(cipher.String(), flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &cipherFlags{}
	f.decrypt = fs.Bool("d", false, "Decrypt instead of encrypt")

	switch cipher {
	case classix.Caesar:
		f.shift = fs.Int("shift", classix.DefaultShift, "Number of positions to shift")
		f.ignoreCase = fs.Bool("ignore-case", false, "Write every letter in uppercase")
	case classix.A1Z26:
		f.cyrillic = fs.Bool("cyrillic", false, "Decode positions into the Cyrillic alphabet")
	case classix.Vigenere:
		f.cyrillic = fs.Bool("cyrillic", false, "Use the Cyrillic alphabet")
		f.ignoreCase = fs.Bool("ignore-case", false, "Upper-case the text first")
		f.shift = fs.Int("shift", 0, "Caesar shift applied before the keyword")
		f.key = fs.String("key", "", "Keyword")
		f.generateKey = fs.Bool("generate-key", false, "Generate a keyword when -key is empty")
		f.words = fs.Int("words", 0, "Build the generated keyword from this many dictionary words")
	case classix.Hill:
		f.cyrillic = fs.Bool("cyrillic", false, "Use the Cyrillic alphabet")
		f.key = fs.String("key", "", "Key spelling a square matrix, e.g. GYBNQKURP")
		f.generateKey = fs.Bool("generate-key", false, "Generate an invertible key when -key is empty")
		f.dimension = fs.Int("dim", classix.DefaultHillDimension, "Matrix size of the generated key")
	}
	return fs, f
}

// request turns the parsed flags into a classix.Request. Shift is only set when the flag was
// given on the command line, so the library defaults apply otherwise.
func (f *cipherFlags) request(fs *flag.FlagSet, cipher classix.Cipher, text string) classix.Request {
	req := classix.Request{
		Cipher:          cipher,
		Text:            text,
		Cyrillic:        boolValue(f.cyrillic),
		IgnoreCase:      boolValue(f.ignoreCase),
		GenerateKey:     boolValue(f.generateKey),
		KeyDimension:    intValue(f.dimension),
		PassphraseWords: intValue(f.words),
	}
	if *f.decrypt {
		req.Direction = classix.Decrypt
	}
	if f.key != nil {
		req.Key = *f.key
	}
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "shift" {
			req.Shift = pointy.Int(*f.shift)
		}
	})
	return req
}

func cipherCommand(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cipher, err := classix.ParseCipher(name)
	if err != nil {
		return err
	}

	fs, flags := newCipherFlagSet(cipher, stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	text, err := readText(fs.Args(), stdin)
	if err != nil {
		return err
	}

	enc, err := newEncoder()
	if err != nil {
		return err
	}

	req := flags.request(fs, cipher, text)
	res, err := enc.Process(context.Background(), req)
	if err != nil {
		return err
	}

	if req.Key == "" && res.Key != "" {
		fmt.Fprintf(stderr, "key: %s\n", res.Key)
	}
	fmt.Fprintln(stdout, res.Output)
	return nil
}

func keygenCommand(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cipherName := fs.String("cipher", "vigenere", "Cipher to generate a key for: vigenere or hill")
	cyrillic := fs.Bool("cyrillic", false, "Use the Cyrillic alphabet")
	dimension := fs.Int("dim", classix.DefaultHillDimension, "Hill matrix size")
	words := fs.Int("words", 0, "Build a Vigenère keyword from this many dictionary words")
	count := fs.Int("n", 1, "Number of keys to generate")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cipher, err := classix.ParseCipher(*cipherName)
	if err != nil {
		return err
	}
	if *count < 1 {
		return fmt.Errorf("%w: -n must be positive", classix.ErrInvalidConfiguration)
	}

	enc, err := newEncoder()
	if err != nil {
		return err
	}

	req := classix.Request{Cipher: cipher, Cyrillic: *cyrillic, KeyDimension: *dimension, PassphraseWords: *words}
	for i := 0; i < *count; i++ {
		key, err := enc.GenerateKey(context.Background(), req)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, key)
	}
	return nil
}

// readText joins the positional arguments or, without any, reads stdin up to EOF with the
// trailing newline removed.
func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if stdin == nil {
		return "", errors.New("no text given")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func boolValue(b *bool) bool {
	return b != nil && *b
}

func intValue(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
