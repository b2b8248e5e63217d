package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text untouched", "Casa na praia", "Casa na praia"},
		{"ampersand and quotes", `Casa & Jardim "top"`, "Casa &amp; Jardim &quot;top&quot;"},
		{"angle brackets", "a<b>c", "a&lt;b&gt;c"},
		{"apostrophe", "d'água", "d&apos;água"},
		{"all five", `&<>'"`, "&amp;&lt;&gt;&apos;&quot;"},
		{"utf8 preserved", "Chácara à venda", "Chácara à venda"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.input))
		})
	}
}

func TestEscape_SinglePassNotIdempotent(t *testing.T) {
	// Escaping must happen exactly once per field: re-escaping escaped
	// text corrupts the entities, so the double application differs.
	s := "Casa & Jardim"
	once := Escape(s)
	twice := Escape(once)
	assert.NotEqual(t, once, twice)
	assert.Equal(t, "Casa &amp;amp; Jardim", twice)
}

func TestFnum(t *testing.T) {
	assert.Equal(t, "2000", fnum(2000))
	assert.Equal(t, "1250.5", fnum(1250.5))
	assert.Equal(t, "0", fnum(0))
}
