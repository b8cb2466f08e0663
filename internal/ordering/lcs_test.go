package ordering

import "testing"

func TestLCS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    []string
		b    []string
		want int
	}{
		{
			name: "identical sequences",
			a:    []string{"Summary", "Education", "Skills"},
			b:    []string{"Summary", "Education", "Skills"},
			want: 3,
		},
		{
			name: "subsequence with extras",
			a:    []string{"Summary", "Education", "Projects", "Skills"},
			b:    []string{"Education", "Skills"},
			want: 2,
		},
		{
			name: "order matters",
			a:    []string{"Education", "Skills"},
			b:    []string{"Skills", "Education"},
			want: 1,
		},
		{
			name: "disjoint",
			a:    []string{"Summary"},
			b:    []string{"Awards"},
			want: 0,
		},
		{
			name: "empty side",
			a:    nil,
			b:    []string{"Education"},
			want: 0,
		},
		{
			name: "both empty",
			a:    nil,
			b:    nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := LCS(tt.a, tt.b); got != tt.want {
				t.Fatalf("LCS(%v, %v) = %d, expected %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLCSSymmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2][]string{
		{{"Summary", "Education", "Skills"}, {"Education", "Summary", "Skills", "Projects"}},
		{{"Contact Info"}, {"Summary", "Contact Info", "Education"}},
		{{}, {"Education"}},
	}

	for _, pair := range pairs {
		if ab, ba := LCS(pair[0], pair[1]), LCS(pair[1], pair[0]); ab != ba {
			t.Fatalf("LCS not symmetric for %v / %v: %d vs %d", pair[0], pair[1], ab, ba)
		}
	}
}
