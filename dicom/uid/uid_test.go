package uid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		uid  string
		want bool
	}{
		{"implicit VR LE", "1.2.840.10008.1.2", true},
		{"explicit VR LE", "1.2.840.10008.1.2.1", true},
		{"empty", "", false},
		{"leading period", ".1.2.3", false},
		{"trailing period", "1.2.3.", false},
		{"consecutive periods", "1..2.3", false},
		{"leading zero in component", "1.02.3", false},
		{"single component", "12345", false},
		{"non-digit", "1.2.a.3", false},
		{"zero component is valid alone", "1.0.3", true},
		{"too long", "1." + string(make([]byte, 70)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.uid))
		})
	}
}

func TestParse(t *testing.T) {
	u, err := Parse("1.2.840.10008.1.2.1")
	require.NoError(t, err)
	assert.Equal(t, "1.2.840.10008.1.2.1", u.String())

	_, err = Parse("not a uid")
	assert.Error(t, err)
}

func TestMustParsePanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustParse("") })
}

func TestUIDEquals(t *testing.T) {
	a := MustParse("1.2.840.10008.1.2")
	b := MustParse("1.2.840.10008.1.2")
	c := MustParse("1.2.840.10008.1.2.1")
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestLookupTransferSyntax(t *testing.T) {
	info, ok := LookupTransferSyntax("1.2.840.10008.1.2")
	require.True(t, ok)
	assert.Equal(t, "Implicit VR Little Endian", info.Name)
	assert.False(t, info.ExplicitVR)
	assert.True(t, info.LittleEndian)

	info, ok = LookupTransferSyntax("1.2.840.10008.1.2.2")
	require.True(t, ok)
	assert.False(t, info.LittleEndian)

	info, ok = LookupTransferSyntax("1.2.840.10008.1.2.1.99")
	require.True(t, ok)
	assert.True(t, info.Deflated)

	_, ok = LookupTransferSyntax("1.2.3.4.5.6.7.8.9")
	assert.False(t, ok)

	_, ok = LookupTransferSyntax("not a uid")
	assert.False(t, ok)
}
