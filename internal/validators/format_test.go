package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFrenchPhone(t *testing.T) {
	valid := []string{
		"0612345678",
		"06 12 34 56 78",
		"+33612345678",
		"+33 6 12 34 56 78",
		"0033612345678",
		"06.12.34.56.78",
		"06-12-34-56-78",
	}
	for _, p := range valid {
		assert.True(t, IsFrenchPhone(p), p)
	}

	invalid := []string{
		"",
		"061234567",
		"0012345678",
		"+44612345678",
		"06123456789",
		"phone",
	}
	for _, p := range invalid {
		assert.False(t, IsFrenchPhone(p), p)
	}
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("client@example.fr"))
	assert.True(t, IsEmail("  client@example.fr "))
	assert.False(t, IsEmail("client@"))
	assert.False(t, IsEmail("client"))
	assert.False(t, IsEmail(""))
}

func TestEmailDomain(t *testing.T) {
	d, ok := EmailDomain(" Client@Example.FR ")
	assert.True(t, ok)
	assert.Equal(t, "example.fr", d)

	for _, bad := range []string{"", "client", "client@", "@example.fr"} {
		_, ok := EmailDomain(bad)
		assert.False(t, ok, bad)
	}
}
