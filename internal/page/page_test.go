package page

import "testing"

func TestHeadline_PrefersOGTitle(t *testing.T) {
	markup := `<!doctype html>
	<html>
	  <head>
	    <title>Valuations 2025 | Example News</title>
	    <meta property="og:title" content="Official Global Soccer Team Valuations 2025">
	  </head>
	  <body><p>body</p></body>
	</html>`
	got := Headline([]byte(markup))
	if got != "Official Global Soccer Team Valuations 2025" {
		t.Fatalf("unexpected headline: %q", got)
	}
}

func TestHeadline_FallsBackToTitle(t *testing.T) {
	markup := `<html><head><title>  Plain   Title
	</title></head><body></body></html>`
	got := Headline([]byte(markup))
	if got != "Plain Title" {
		t.Fatalf("unexpected headline: %q", got)
	}
}

func TestHeadline_Missing(t *testing.T) {
	if got := Headline([]byte("<html><body><p>x</p></body></html>")); got != "" {
		t.Fatalf("expected empty headline, got %q", got)
	}
}
