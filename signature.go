package fileformat

import "bytes"

// signaturePart is a single byte pattern expected at a fixed offset from
// the start of the buffer.
type signaturePart struct {
	offset  int
	pattern []byte
}

// matches reports whether the buffer carries the pattern at the part's
// offset. A buffer too short to reach offset+len(pattern) does not match;
// it is never an error.
func (p signaturePart) matches(b []byte) bool {
	end := p.offset + len(p.pattern)
	return end <= len(b) && bytes.Equal(b[p.offset:end], p.pattern)
}

// signature is one self-sufficient combination of parts. All parts must
// match for the signature to match. Multi-part signatures distinguish
// container formats (ZIP, RIFF, Ogg, EBML) that share a common header and
// differ only deeper in the file.
type signature []signaturePart

// matches reports whether every part of the signature matches the buffer.
func (s signature) matches(b []byte) bool {
	for _, p := range s {
		if !p.matches(b) {
			return false
		}
	}
	return true
}

// signatureRule binds a format to the signatures that identify it. Any
// single signature matching is sufficient; they are evaluated in listed
// order.
type signatureRule struct {
	format     FileFormat
	signatures []signature
}

// matches reports whether any of the rule's signatures matches the buffer.
func (r *signatureRule) matches(b []byte) bool {
	for _, s := range r.signatures {
		if s.matches(b) {
			return true
		}
	}
	return false
}

// part builds a signaturePart from a pattern given as a string literal.
func part(offset int, pattern string) signaturePart {
	return signaturePart{offset: offset, pattern: []byte(pattern)}
}

// sig groups parts into one signature.
func sig(parts ...signaturePart) signature {
	return signature(parts)
}
