package template

import "testing"

func TestRevision(t *testing.T) {
	doc := "<!-- agentfile:template v1.2.0 -->\n# Title\n"

	rev, ok := Revision(doc)
	if !ok {
		t.Fatal("expected revision marker to be found")
	}
	if rev != "1.2.0" {
		t.Errorf("revision = %q, want %q", rev, "1.2.0")
	}

	if _, ok := Revision("# No marker\n"); ok {
		t.Error("expected no revision in unmarked document")
	}
}

func TestIsNewer(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"1.3.0", "1.2.0", true},
		{"1.2.0", "1.2.0", false},
		{"1.1.9", "1.2.0", false},
		{"v2.0.0", "1.9.9", true},
	}

	for _, tc := range cases {
		got, err := IsNewer(tc.a, tc.b)
		if err != nil {
			t.Errorf("IsNewer(%q, %q) error: %v", tc.a, tc.b, err)
			continue
		}
		if got != tc.want {
			t.Errorf("IsNewer(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}

	if _, err := IsNewer("not-a-version", "1.0.0"); err == nil {
		t.Error("expected error for invalid version")
	}
}
