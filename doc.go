// Package classix implements classical text ciphers over the Latin and Cyrillic alphabets:
// Caesar (with the ROT1 and ROT13 specialisations), A1Z26, Vigenère and Hill.
//
// None of these ciphers offer any security. They fall to frequency analysis and exist for
// teaching, puzzles and games.
//
// # Quick Start
//
//	var enc classix.Encoder
//
//	out, err := enc.Caesar("Hello, World!", classix.DefaultShift, false)
//	// out == "Khoor, Zruog!"
//
//	out, err = enc.Vigenere("ATTACKATDAWN", classix.VigenereParams{Key: "LEMON"})
//	// out == "LXFOPVEFRNHR"
//
//	out, err = enc.Hill("ACT", "GYBNQKURP", false)
//
// # Alphabets
//
// Letters are looked up in the 26-letter Latin and the 33-letter Cyrillic alphabets (Ё
// included, after Е). Case is preserved by Caesar and Vigenère. Characters that are not
// letters pass through Caesar and Vigenère unchanged, are dropped by A1Z26 and must be
// removable punctuation for Hill. A letter from any other script is rejected with
// ErrUnsupportedAlphabet.
//
// # Keys
//
// Vigenère and Hill require a key. Keys are never generated implicitly; call
// GenerateVigenereKey, GenerateHillKey or GeneratePassphraseKey with a RandomSource, or set
// Request.GenerateKey when going through Process. Encoder.GenerateKey uses the encoder's own
// random source and dictionary:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	key := classix.GenerateVigenereKey(rng, classix.Latin)
//
// # Instrumented processing
//
// Process and ProcessBatch run Requests through the same ciphers while notifying
// observability hooks and metrics collectors:
//
//	enc, err := classix.New(classix.WithMetricsCollector(collector))
//	res, err := enc.Process(ctx, classix.Request{Cipher: classix.ROT13, Text: "uryyb"})
//
// # Error Handling
//
// Errors wrap sentinel values and can be classified:
//
//	if _, err := enc.Hill(text, "ABCDE", false); err != nil {
//	    switch {
//	    case classix.IsKeyError(err):        // ErrInvalidKey, ErrKeyNotInvertible
//	    case classix.IsValidationError(err): // ErrInvalidInput, ErrUnsupportedAlphabet, ErrInvalidFormat
//	    }
//	}
package classix
