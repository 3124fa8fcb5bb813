package htmlsanitize

import "testing"

func TestSanitize_RemovesScripts(t *testing.T) {
	got := Sanitize(`<p>hello</p><script>alert(1)</script>`)
	if got != "<p>hello</p>" {
		t.Errorf("expected script to be stripped, got %q", got)
	}
}

func TestStrip_RemovesAllMarkup(t *testing.T) {
	got := Strip(`  <b>United</b> States `)
	if got != "United States" {
		t.Errorf("expected plain trimmed text, got %q", got)
	}

	if got := Strip(`<script>x</script>`); got != "" {
		t.Errorf("markup-only input should strip to empty, got %q", got)
	}
}
