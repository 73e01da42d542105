package classix

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hengadev/errsx"
)

// DefaultHillDimension is the key matrix size used when Process generates a Hill key.
const DefaultHillDimension = 2

// Request describes one cipher invocation handled by Process.
type Request struct {
	Cipher    Cipher
	Direction Direction
	Text      string
	Key       string

	// Shift overrides the Caesar shift (default 3) or sets the Vigenère pre-shift (default 0).
	Shift      *int
	Cyrillic   bool
	IgnoreCase bool

	// GenerateKey asks Process to generate a Vigenère or Hill key when Key is empty.
	GenerateKey bool
	// KeyDimension is the Hill matrix size for generated keys (default 2).
	KeyDimension int
	// PassphraseWords, when positive, builds generated Vigenère keys from dictionary words.
	PassphraseWords int
}

// Result is the outcome of a successful Process call.
type Result struct {
	ID        uuid.UUID
	Cipher    Cipher
	Direction Direction
	Output    string
	// Key is the key actually used, including a generated one.
	Key       string
	Duration  time.Duration
}

// Process runs a single request, notifying the configured hooks before and after the cipher.
func (e *Encoder) Process(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	id := uuid.New()
	operation := req.Cipher.String()
	metadata := map[string]any{
		"request_id":  id.String(),
		"direction":   req.Direction.String(),
		"text_length": utf8.RuneCountInString(req.Text),
	}

	hook := e.observer()
	hook.OnProcessStart(ctx, operation, metadata)
	start := time.Now()

	key, err := e.resolveKey(ctx, req, metadata)
	var output string
	if err == nil {
		output, err = e.dispatch(req, key)
	}
	duration := time.Since(start)

	if err != nil {
		hook.OnError(ctx, operation, err, metadata)
		hook.OnProcessComplete(ctx, operation, duration, err, metadata)
		return Result{}, fmt.Errorf("%s %s: %w", req.Direction, operation, err)
	}

	metadata["output_length"] = utf8.RuneCountInString(output)
	hook.OnProcessComplete(ctx, operation, duration, nil, metadata)

	return Result{
		ID:        id,
		Cipher:    req.Cipher,
		Direction: req.Direction,
		Output:    output,
		Key:       key,
		Duration:  duration,
	}, nil
}

// ProcessBatch runs every request in order. Failed requests leave a zero Result at their
// index and are reported together in an errsx.Map keyed "request[i]". The batch stops early
// when ctx is done.
func (e *Encoder) ProcessBatch(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))

	var errs errsx.Map
	for i, req := range reqs {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("batch interrupted after %d of %d requests: %w", i, len(reqs), err)
		}
		res, err := e.Process(ctx, req)
		if err != nil {
			errs.Set(fmt.Sprintf("request[%d]", i), err)
			continue
		}
		results[i] = res
	}
	return results, errs.AsError()
}

func (e *Encoder) resolveKey(ctx context.Context, req Request, metadata map[string]any) (string, error) {
	if req.Key != "" || !req.GenerateKey {
		return req.Key, nil
	}
	if req.Direction == Decrypt {
		return "", NewInvalidKeyError(req.Cipher, "a generated key cannot decrypt anything")
	}
	return e.generateKey(ctx, req, metadata)
}

// GenerateKey returns a fresh Vigenère or Hill key for req without running the cipher.
// Cyrillic, KeyDimension and PassphraseWords are honoured as in Process.
func (e *Encoder) GenerateKey(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return e.generateKey(ctx, req, map[string]any{"direction": req.Direction.String()})
}

func (e *Encoder) generateKey(ctx context.Context, req Request, metadata map[string]any) (string, error) {
	script := scriptOf(req.Cyrillic)
	var (
		key string
		err error
	)
	switch req.Cipher {
	case Vigenere:
		if req.PassphraseWords > 0 {
			key, err = GeneratePassphraseKey(e.random(), e.dictionary, req.PassphraseWords, script)
		} else {
			key = GenerateVigenereKey(e.random(), script)
		}
	case Hill:
		n := req.KeyDimension
		if n == 0 {
			n = DefaultHillDimension
		}
		key, err = GenerateHillKey(e.random(), script, n)
	default:
		return "", NewInvalidKeyError(req.Cipher, "cipher does not take a key")
	}
	if err != nil {
		return "", err
	}

	e.observer().OnKeyGenerated(ctx, req.Cipher.String(), utf8.RuneCountInString(key), metadata)
	return key, nil
}

func (e *Encoder) dispatch(req Request, key string) (string, error) {
	decrypt := req.Direction == Decrypt

	switch req.Cipher {
	case Caesar:
		shift := DefaultShift
		if req.Shift != nil {
			shift = *req.Shift
		}
		if decrypt {
			return e.CaesarDecrypt(req.Text, shift, req.IgnoreCase)
		}
		return e.Caesar(req.Text, shift, req.IgnoreCase)
	case ROT1:
		if decrypt {
			return caesar(req.Text, -1, false, ROT1)
		}
		return e.ROT1(req.Text)
	case ROT13:
		if decrypt {
			return caesar(req.Text, -13, false, ROT13)
		}
		return e.ROT13(req.Text)
	case A1Z26:
		if decrypt {
			return e.A1Z26Decode(req.Text, req.Cyrillic)
		}
		return e.A1Z26(req.Text)
	case Vigenere:
		p := VigenereParams{Key: key, Cyrillic: req.Cyrillic, IgnoreCase: req.IgnoreCase}
		if req.Shift != nil {
			p.Shift = *req.Shift
		}
		if decrypt {
			return e.VigenereDecrypt(req.Text, p)
		}
		return e.Vigenere(req.Text, p)
	case Hill:
		if decrypt {
			return e.HillDecrypt(req.Text, key, req.Cyrillic)
		}
		return e.Hill(req.Text, key, req.Cyrillic)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCipher, req.Cipher)
	}
}
