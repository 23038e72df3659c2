package display

import (
	"strings"
	"testing"
)

func TestRenderBannerCentres(t *testing.T) {
	out := renderBanner(200)
	if !strings.Contains(out, Tagline) {
		t.Fatalf("banner is missing the tagline:\n%s", out)
	}
	for _, l := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if !strings.HasPrefix(l, "    ") {
			t.Fatalf("line not padded for a wide terminal: %q", l)
		}
	}

	narrow := renderBanner(10)
	if strings.HasPrefix(narrow, " ") && !strings.HasPrefix(strings.TrimRight(bannerRaw, "\n"), " ") {
		t.Fatal("narrow terminal should not add padding")
	}
}
