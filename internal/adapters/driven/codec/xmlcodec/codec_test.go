package xmlcodec

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberknet/reloadluf/internal/core/domain"
)

// legacyValue is what earlier plugin builds stored: a utf-16 declaration,
// serializer namespaces and self-closing empty elements.
const legacyValue = `<?xml version="1.0" encoding="utf-16"?>` +
	`<ArrayOfIOConnectionInfo xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema">` +
	`<IOConnectionInfo><Path>C:\Users\me\Passwords.kdbx</Path><UserName /><Password /><CredProtMode>Obf</CredProtMode><CredSaveMode>NoSave</CredSaveMode></IOConnectionInfo>` +
	`<IOConnectionInfo><Path>https://dav.example.com/team.kdbx</Path><UserName>alice</UserName><Password /><CredProtMode>Obf</CredProtMode><CredSaveMode>UserNameOnly</CredSaveMode></IOConnectionInfo>` +
	`</ArrayOfIOConnectionInfo>`

func TestCodec_RoundTrip(t *testing.T) {
	connections := []domain.ConnectionInfo{
		{Path: "/a/db.kdbx", CredSaveMode: domain.CredSaveNone, CredProtMode: domain.CredProtObf},
		{Path: "/b/Work & Home.kdbx", CredSaveMode: domain.CredSaveNone, CredProtMode: domain.CredProtObf},
		{
			Path:         "https://dav.example.com/<team>.kdbx",
			UserName:     "alice",
			CredSaveMode: domain.CredSaveUserNameOnly,
			CredProtMode: domain.CredProtNone,
		},
		{Path: "/a/db.kdbx", CredSaveMode: domain.CredSaveNone, CredProtMode: domain.CredProtObf},
	}

	for _, codec := range []*Codec{New(), NewCompact()} {
		text, err := codec.Encode(connections)
		require.NoError(t, err)

		decoded, err := codec.Decode(text)
		require.NoError(t, err)
		assert.Equal(t, connections, decoded)
	}
}

func TestCodec_EncodeFormat(t *testing.T) {
	text, err := New().Encode([]domain.ConnectionInfo{
		{Path: "/a/db.kdbx", CredSaveMode: domain.CredSaveNone, CredProtMode: domain.CredProtObf},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "<?xml"))
	assert.Contains(t, text, "<ArrayOfIOConnectionInfo>")
	assert.Contains(t, text, "<Path>/a/db.kdbx</Path>")
	assert.Contains(t, text, "<CredSaveMode>NoSave</CredSaveMode>")
}

func TestCodec_EmptyList(t *testing.T) {
	codec := NewCompact()

	text, err := codec.Encode(nil)
	require.NoError(t, err)
	assert.Contains(t, text, "ArrayOfIOConnectionInfo")

	decoded, err := codec.Decode(text)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestCodec_DecodeLegacyValue(t *testing.T) {
	decoded, err := New().Decode(legacyValue)

	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, `C:\Users\me\Passwords.kdbx`, decoded[0].Path)
	assert.Equal(t, "", decoded[0].UserName)
	assert.Equal(t, domain.CredSaveNone, decoded[0].CredSaveMode)
	assert.Equal(t, domain.CredProtObf, decoded[0].CredProtMode)
	assert.Equal(t, "https://dav.example.com/team.kdbx", decoded[1].Path)
	assert.Equal(t, "alice", decoded[1].UserName)
	assert.Equal(t, domain.CredSaveUserNameOnly, decoded[1].CredSaveMode)
}

func TestCodec_DecodeUnknownModesDefault(t *testing.T) {
	text := `<ArrayOfIOConnectionInfo><IOConnectionInfo><Path>/a.kdbx</Path>` +
		`<CredSaveMode>Sometimes</CredSaveMode><Extra>ignored</Extra></IOConnectionInfo></ArrayOfIOConnectionInfo>`

	decoded, err := New().Decode(text)

	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, domain.CredSaveNone, decoded[0].CredSaveMode)
	assert.Equal(t, domain.CredProtObf, decoded[0].CredProtMode)
}

func TestCodec_DecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Plain text", "not xml at all"},
		{"Unclosed element", "<ArrayOfIOConnectionInfo><IOConnectionInfo><Path>/a.kdbx</Path>"},
		{"Wrong root", "<ArrayOfString><string>/a.kdbx</string></ArrayOfString>"},
		{"Trailing element", "<ArrayOfIOConnectionInfo></ArrayOfIOConnectionInfo><Extra/>"},
		{"Trailing text", "<ArrayOfIOConnectionInfo></ArrayOfIOConnectionInfo>junk"},
		{"Unsupported charset", `<?xml version="1.0" encoding="ebcdic"?><ArrayOfIOConnectionInfo/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := New().Decode(tt.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedSession))
			assert.Nil(t, decoded)
		})
	}
}

func TestCodec_EncodeRejectsUnrepresentablePath(t *testing.T) {
	tests := []struct {
		name string
		ioc  domain.ConnectionInfo
	}{
		{"Invalid UTF-8 path", domain.ConnectionInfo{Path: "/a/\xff\xfe.kdbx"}},
		{"Control character in path", domain.ConnectionInfo{Path: "/a/ctl\x01.kdbx"}},
		{"NUL in path", domain.ConnectionInfo{Path: "/a/nul\x00.kdbx"}},
		{"Non-character in user name", domain.ConnectionInfo{Path: "/a/db.kdbx", UserName: "bob\uFFFE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := New().Encode([]domain.ConnectionInfo{{Path: "/ok.kdbx"}, tt.ioc})

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, text)
		})
	}
}

func TestCodec_RoundTripEdgePaths(t *testing.T) {
	paths := []string{
		"  /a/padded.kdbx  ",
		"/a/line\r\nbreak.kdbx",
		"/a/tab\tname.kdbx",
		"/a/\u00e9t\u00e9/\U0001F512.kdbx",
	}

	connections := make([]domain.ConnectionInfo, 0, len(paths))
	for _, p := range paths {
		connections = append(connections, domain.ConnectionInfo{Path: p})
	}

	text, err := New().Encode(connections)
	require.NoError(t, err)

	decoded, err := New().Decode(text)
	require.NoError(t, err)
	require.Len(t, decoded, len(paths))
	for i, p := range paths {
		assert.Equal(t, p, decoded[i].Path)
	}
}
