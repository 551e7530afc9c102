package note

// Alphabet is the private pitch-letter code, one symbol per chromatic
// class in order: 'a' = C up through 'l' = B. It deliberately carries no
// musical meaning so the detection side and the rendering side can
// change conventions independently; the inverse table (symbol to a
// renderer's pitch spelling) belongs to the renderer.
const Alphabet = "abcdefghijkl"

// Code returns the letter for a pitch class 0..11.
func Code(class int) byte {
	return Alphabet[class]
}

// ClassOf inverts Code. ok is false for bytes outside the alphabet.
func ClassOf(code byte) (class int, ok bool) {
	if code < 'a' || code > 'l' {
		return 0, false
	}
	return int(code - 'a'), true
}
