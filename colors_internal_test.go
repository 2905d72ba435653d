package fragility

import "testing"

func TestReversedLeavesInputAlone(t *testing.T) {
	in := []Color{"#000001", "#000002", "#000003"}

	out := reversed(in)

	if in[0] != "#000001" || in[2] != "#000003" {
		t.Errorf("input was modified: %v", in)
	}

	want := []Color{"#000003", "#000002", "#000001"}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("at index %d, expected %s, got %s", i, want[i], out[i])
		}
	}

	if palette[0] != "#67001f" || palette[len(palette)-1] != "#1a1a1a" {
		t.Errorf("built-in palette was modified by scale construction: %v", palette)
	}
}
