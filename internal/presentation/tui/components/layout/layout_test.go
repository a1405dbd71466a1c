package layout

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	got := Render(Props{
		Main:   "MAIN",
		Footer: "FOOTER",
	})

	if !strings.Contains(got, "MAIN") {
		t.Error("Missing main content")
	}
	if !strings.Contains(got, "FOOTER") {
		t.Error("Missing footer content")
	}
	if strings.Index(got, "MAIN") > strings.Index(got, "FOOTER") {
		t.Error("Footer should be rendered below main")
	}
}

func TestRender_NoFooter(t *testing.T) {
	if got := Render(Props{Main: "MAIN"}); got != "MAIN" {
		t.Errorf("Render() = %q, want main only", got)
	}
}
