package protocol

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Wire framing constants matching RFC 5734 section 4.
const (
	// headerLen is the size of the length prefix. The prefix counts itself,
	// so the smallest legal frame announces a total length of 4.
	headerLen = 4
	// MaxFrame caps the total frame length accepted from the peer.
	MaxFrame uint32 = 16 * 1024 * 1024 // 16 MB
)

// WriteFrame writes one EPP frame to the writer: a 4-byte big-endian total
// length (counting the header itself) followed by the UTF-8 XML bytes.
func WriteFrame(w io.Writer, doc string) error {
	var header [headerLen]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(doc))+headerLen)

	if _, err := w.Write(header[:]); err != nil {
		return &TransportError{Op: "writing frame header", Err: err}
	}
	if _, err := io.WriteString(w, doc); err != nil {
		return &TransportError{Op: "writing frame payload", Err: err}
	}
	return nil
}

// ReadFrame reads one EPP frame from the reader and returns its XML payload.
// io.ReadFull keeps reading until the declared length is satisfied, so
// fragmented delivery (down to single-byte reads) is handled; a stream that
// ends before the frame is complete is a hard transport error.
func ReadFrame(r io.Reader) (string, error) {
	var header [headerLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF {
			return "", &TransportError{Op: "reading frame header", Err: fmt.Errorf("connection closed by peer")}
		}
		if err == io.ErrUnexpectedEOF {
			return "", &TransportError{Op: "reading frame header", Err: fmt.Errorf("unexpected end of stream mid-frame")}
		}
		return "", &TransportError{Op: "reading frame header", Err: err}
	}

	total := binary.BigEndian.Uint32(header[:])
	if total < headerLen {
		return "", &TransportError{Op: "reading frame header", Err: fmt.Errorf("declared frame length %d is below the 4-byte minimum", total)}
	}
	if total > MaxFrame {
		return "", &TransportError{Op: "reading frame header", Err: fmt.Errorf("declared frame length %d exceeds %d byte cap", total, MaxFrame)}
	}

	payload := make([]byte, total-headerLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return "", &TransportError{Op: "reading frame payload", Err: fmt.Errorf("unexpected end of stream mid-frame")}
		}
		return "", &TransportError{Op: "reading frame payload", Err: err}
	}
	return string(payload), nil
}
