package life

import "testing"

func TestFromMap(t *testing.T) {
	cases := []struct {
		name string
		in   map[string]string
		want Config
	}{
		{name: "nil", in: nil, want: DefaultConfig()},
		{
			name: "overrides",
			in:   map[string]string{"w": "10", "h": "0", "density": "0.5", "seed": "-3"},
			want: Config{Width: 10, Height: 0, Density: 0.5, Seed: -3},
		},
		{
			name: "invalid values keep defaults",
			in:   map[string]string{"w": "-4", "h": "tall", "density": "2", "seed": "x"},
			want: DefaultConfig(),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromMap(tc.in); got != tc.want {
				t.Fatalf("FromMap(%v) = %+v, expected %+v", tc.in, got, tc.want)
			}
		})
	}
}
