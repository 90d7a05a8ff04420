package checksum

import "testing"

func TestSum_Known(t *testing.T) {
	const emptySHA = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Sum(nil); got != emptySHA {
		t.Errorf("Sum(nil) = %q, want %q", got, emptySHA)
	}
}

func TestFingerprint_OrderIndependent(t *testing.T) {
	a := Fingerprint(map[string]string{"a.md": "1", "b.md": "2"})
	b := Fingerprint(map[string]string{"b.md": "2", "a.md": "1"})
	if a != b {
		t.Error("fingerprint should not depend on map order")
	}
}

func TestFingerprint_DetectsChanges(t *testing.T) {
	base := Fingerprint(map[string]string{"a.md": "1"})
	cases := map[string]map[string]string{
		"modified": {"a.md": "2"},
		"added":    {"a.md": "1", "b.md": "3"},
		"removed":  {},
		"renamed":  {"c.md": "1"},
	}
	for name, sums := range cases {
		if Fingerprint(sums) == base {
			t.Errorf("%s: fingerprint unchanged", name)
		}
	}
}
