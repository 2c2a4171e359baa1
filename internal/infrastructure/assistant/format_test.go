package assistant

import "testing"

func TestFormatNumberedLists(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "inline items split onto lines",
			in:   "Follow these steps: 1. Create a profile 2. Add your skills 3. Apply",
			want: "Follow these steps:\n1. Create a profile\n2. Add your skills\n3. Apply",
		},
		{
			name: "already-broken lists untouched",
			in:   "Steps:\n1. One\n2. Two",
			want: "Steps:\n1. One\n2. Two",
		},
		{
			name: "plain prose untouched",
			in:   "ConnectUS charges a small fee for posting jobs.",
			want: "ConnectUS charges a small fee for posting jobs.",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatNumberedLists(tc.in); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
