package transcript

import "testing"

func TestFormatSize(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.00 MB"},
	}
	for _, c := range cases {
		if got := FormatSize(c.in); got != c.want {
			t.Fatalf("FormatSize(%d) = %q, attendu %q", c.in, got, c.want)
		}
	}
}

func TestCounts(t *testing.T) {
	text := "un deux  trois"
	if got := WordCount(text); got != 3 {
		t.Fatalf("WordCount = %d, attendu 3", got)
	}
	if got := CharCount("héllo"); got != 5 {
		t.Fatalf("CharCount = %d, attendu 5", got)
	}
	if got := EstimateSizeBytes("héllo"); got != 6 {
		t.Fatalf("EstimateSizeBytes = %d, attendu 6 (é = 2 octets)", got)
	}
}
