package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Lowercases", "/A/DB.KDBX", "/a/db.kdbx"},
		{"Trims whitespace", "  /a/db.kdbx\t\n", "/a/db.kdbx"},
		{"Windows path", `C:\Users\Me\Passwords.kdbx`, `c:\users\me\passwords.kdbx`},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePath(tt.input))
			assert.Equal(t, tt.expected, ConnectionInfo{Path: tt.input}.NormalizedPath())
		})
	}
}

func TestConnectionInfo_IsEmpty(t *testing.T) {
	assert.True(t, ConnectionInfo{}.IsEmpty())
	assert.True(t, ConnectionInfo{UserName: "bob"}.IsEmpty())
	assert.False(t, ConnectionInfo{Path: "/a.kdbx"}.IsEmpty())
}

func TestConnectionInfo_SamePath(t *testing.T) {
	a := ConnectionInfo{Path: "/A/db.kdbx"}
	b := ConnectionInfo{Path: " /a/DB.kdbx "}
	c := ConnectionInfo{Path: "/b/db.kdbx"}

	assert.True(t, a.SamePath(b))
	assert.False(t, a.SamePath(c))
}

func TestConnectionInfo_ForPersistence(t *testing.T) {
	tests := []struct {
		name     string
		input    ConnectionInfo
		expected ConnectionInfo
	}{
		{
			name:  "Defaults fill in",
			input: ConnectionInfo{Path: "/a.kdbx", UserName: "bob", Password: "secret"},
			expected: ConnectionInfo{
				Path:         "/a.kdbx",
				CredSaveMode: CredSaveNone,
				CredProtMode: CredProtObf,
			},
		},
		{
			name: "User name only keeps user",
			input: ConnectionInfo{
				Path:         "https://example.com/a.kdbx",
				UserName:     "bob",
				Password:     "secret",
				CredSaveMode: CredSaveUserNameOnly,
				CredProtMode: CredProtNone,
			},
			expected: ConnectionInfo{
				Path:         "https://example.com/a.kdbx",
				UserName:     "bob",
				CredSaveMode: CredSaveUserNameOnly,
				CredProtMode: CredProtNone,
			},
		},
		{
			name: "Save credentials still drops password",
			input: ConnectionInfo{
				Path:         "/a.kdbx",
				UserName:     "bob",
				Password:     "secret",
				CredSaveMode: CredSaveAll,
				CredProtMode: CredProtObf,
			},
			expected: ConnectionInfo{
				Path:         "/a.kdbx",
				UserName:     "bob",
				CredSaveMode: CredSaveAll,
				CredProtMode: CredProtObf,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.ForPersistence())
		})
	}
}

func TestConnectionInfo_ForPersistence_DoesNotMutate(t *testing.T) {
	orig := ConnectionInfo{Path: "/a.kdbx", UserName: "bob", Password: "secret"}

	_ = orig.ForPersistence()

	assert.Equal(t, "secret", orig.Password)
	assert.Equal(t, "bob", orig.UserName)
}

func TestCredSaveMode_IsValid(t *testing.T) {
	assert.True(t, CredSaveNone.IsValid())
	assert.True(t, CredSaveUserNameOnly.IsValid())
	assert.True(t, CredSaveAll.IsValid())
	assert.False(t, CredSaveMode("Sometimes").IsValid())
	assert.Equal(t, "SaveCred", CredSaveAll.String())
}

func TestCompositeKey_IsEmpty(t *testing.T) {
	var nilKey *CompositeKey
	assert.True(t, nilKey.IsEmpty())
	assert.True(t, (&CompositeKey{}).IsEmpty())
	assert.False(t, (&CompositeKey{KeyFile: "/a.keyx"}).IsEmpty())
}
