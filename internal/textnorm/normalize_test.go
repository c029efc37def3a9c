package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Lowercases(t *testing.T) {
	assert.Equal(t, "python and sql", Normalize("Python AND SQL"))
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "data analyst role", Normalize("  data\t\tanalyst\n\n  role  "))
}

func TestNormalize_KeepsSkillPunctuation(t *testing.T) {
	// +, #, ., and - appear in real skill names and must survive.
	assert.Equal(t, "c++ c# node.js scikit-learn", Normalize("C++ C# Node.js scikit-learn"))
}

func TestNormalize_StripsOtherPunctuation(t *testing.T) {
	assert.Equal(t, "sql python", Normalize("SQL, (Python)!"))
}

func TestNormalize_StripsHTML(t *testing.T) {
	html := "<html><body><h1>Data Analyst</h1><p>SQL &amp; Python required</p></body></html>"
	got := Normalize(html)
	assert.Contains(t, got, "data analyst")
	assert.Contains(t, got, "sql")
	assert.Contains(t, got, "python")
	assert.NotContains(t, got, "<")
}

func TestNormalize_DropsScriptAndStyle(t *testing.T) {
	html := "<body><script>var tracking = 1;</script><style>.x{color:red}</style><p>Tableau</p></body>"
	got := Normalize(html)
	assert.Contains(t, got, "tableau")
	assert.NotContains(t, got, "tracking")
	assert.NotContains(t, got, "color")
}

func TestNormalize_PlainTextWithAngleBracket(t *testing.T) {
	// A bare comparison is not markup; the text survives minus the symbol.
	got := Normalize("5 > 3 years experience")
	assert.Contains(t, got, "years experience")
}

func TestNormalize_EmptyAndWhitespaceOnly(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\t  "))
}

func TestNormalize_NeverPanicsOnMalformedHTML(t *testing.T) {
	assert.NotPanics(t, func() {
		Normalize("<div><p>unclosed <b>tags SQL")
	})
}
