package dict

// Variant is one decoded translation at a terminator: its part of
// speech, article index, and a PathWalker over its translation.
type Variant struct {
	POS          uint8
	ArticleIndex uint16
	Translation  *PathWalker

	buf    []byte
	pos    int
	isLast bool
}

// ExtractVariant reads the 3-byte variant header (framing byte, 16-bit
// little-endian article index) at pos and returns a Variant ready to
// walk its translation.
func ExtractVariant(buf []byte, offset int) (Variant, error) {
	if offset+3 > len(buf) {
		return Variant{}, formatErr(UnexpectedEOF)
	}

	framingByte := buf[offset]
	articleIndex := uint16(buf[offset+1]) | uint16(buf[offset+2])<<8

	return Variant{
		POS:          framingByte &^ 0x80,
		ArticleIndex: articleIndex,
		Translation:  newPathWalker(buf, offset+3),
		buf:          buf,
		pos:          offset,
		isLast:       framingByte&0x80 == 0,
	}, nil
}

// FreshTranslation returns a new PathWalker over v's translation,
// independent of v.Translation. Callers that need to peek at a
// translation's characters without disturbing the walker they'll later
// use to actually write it should use this instead.
func (v Variant) FreshTranslation() *PathWalker {
	return newPathWalker(v.buf, v.pos+3)
}

// IntoNextOffset returns the byte offset of the variant following v, or
// ok=false if v was the last one at its terminator. It exhausts v's
// Translation walker as a side effect, since the only way to know a
// path's length is to walk it to the end.
func (v Variant) IntoNextOffset() (offset int, ok bool, err error) {
	if v.isLast {
		return 0, false, nil
	}

	for {
		_, more, err := v.Translation.Next()
		if err != nil {
			return 0, false, err
		}
		if !more {
			break
		}
	}

	return v.pos + v.Translation.reader.BytesConsumed() + 3, true, nil
}
