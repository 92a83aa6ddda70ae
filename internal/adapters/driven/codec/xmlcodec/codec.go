package xmlcodec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cyberknet/reloadluf/internal/core/domain"
	"github.com/cyberknet/reloadluf/internal/core/ports/driven"
)

// Ensure Codec implements the interface.
var _ driven.SessionCodec = (*Codec)(nil)

type connectionArray struct {
	XMLName     xml.Name         `xml:"ArrayOfIOConnectionInfo"`
	Connections []connectionInfo `xml:"IOConnectionInfo"`
}

type connectionInfo struct {
	Path         string `xml:"Path"`
	UserName     string `xml:"UserName"`
	Password     string `xml:"Password"`
	CredProtMode string `xml:"CredProtMode"`
	CredSaveMode string `xml:"CredSaveMode"`
}

// Codec is an XML implementation of driven.SessionCodec.
type Codec struct {
	indent bool
}

// New creates a codec that writes indented XML.
func New() *Codec {
	return &Codec{indent: true}
}

// NewCompact creates a codec that writes XML on a single line.
func NewCompact() *Codec {
	return &Codec{}
}

// Encode serializes connections in order. A field that XML cannot carry
// unchanged (invalid UTF-8 or a character outside the XML 1.0 range) fails
// the whole encode with domain.ErrInvalidInput.
func (c *Codec) Encode(connections []domain.ConnectionInfo) (string, error) {
	arr := connectionArray{Connections: make([]connectionInfo, 0, len(connections))}
	for i, ioc := range connections {
		if err := checkRepresentable(ioc); err != nil {
			return "", fmt.Errorf("%w: entry %d: %v", domain.ErrInvalidInput, i, err)
		}
		arr.Connections = append(arr.Connections, connectionInfo{
			Path:         ioc.Path,
			UserName:     ioc.UserName,
			Password:     ioc.Password,
			CredProtMode: string(ioc.CredProtMode),
			CredSaveMode: string(ioc.CredSaveMode),
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if c.indent {
		enc.Indent("", "  ")
	}
	if err := enc.Encode(arr); err != nil {
		return "", fmt.Errorf("marshalling connections: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("marshalling connections: %w", err)
	}

	return buf.String(), nil
}

// Decode parses an IOConnectionInfo array. Anything after the root
// element other than whitespace, comments or processing instructions
// makes the whole value malformed.
func (c *Codec) Decode(text string) ([]domain.ConnectionInfo, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	dec.CharsetReader = passThroughCharset

	var arr connectionArray
	if err := dec.Decode(&arr); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSession, err)
	}
	if err := expectEnd(dec); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSession, err)
	}

	connections := make([]domain.ConnectionInfo, 0, len(arr.Connections))
	for _, ioc := range arr.Connections {
		connections = append(connections, domain.ConnectionInfo{
			Path:         ioc.Path,
			UserName:     ioc.UserName,
			Password:     ioc.Password,
			CredProtMode: parseProtMode(ioc.CredProtMode),
			CredSaveMode: parseSaveMode(ioc.CredSaveMode),
		})
	}
	return connections, nil
}

func checkRepresentable(ioc domain.ConnectionInfo) error {
	fields := []struct {
		name  string
		value string
	}{
		{"path", ioc.Path},
		{"user name", ioc.UserName},
		{"password", ioc.Password},
	}
	for _, f := range fields {
		if !utf8.ValidString(f.value) {
			return fmt.Errorf("%s %q is not valid UTF-8", f.name, f.value)
		}
		for _, r := range f.value {
			if !isXMLChar(r) {
				return fmt.Errorf("%s %q contains character %U not allowed in XML", f.name, f.value, r)
			}
		}
	}
	return nil
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}

// passThroughCharset accepts the declarations the host is known to write.
// The input is already a decoded string, so no transcoding is needed.
func passThroughCharset(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "utf-16", "utf-16le", "utf-16be", "unicode", "utf-8", "utf8":
		return input, nil
	default:
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
}

func expectEnd(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return errors.New("unexpected text after root element")
			}
		default:
			return errors.New("unexpected content after root element")
		}
	}
}

func parseSaveMode(s string) domain.CredSaveMode {
	m := domain.CredSaveMode(s)
	if !m.IsValid() {
		return domain.CredSaveNone
	}
	return m
}

func parseProtMode(s string) domain.CredProtMode {
	switch domain.CredProtMode(s) {
	case domain.CredProtNone:
		return domain.CredProtNone
	default:
		return domain.CredProtObf
	}
}
