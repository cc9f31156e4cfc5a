package request

import "testing"

func TestResolveRejectInvalidDates(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  *bool
	}{
		{name: "absent keeps server default", value: "", want: nil},
		{name: "true", value: "true", want: boolPtr(true)},
		{name: "numeric true", value: "1", want: boolPtr(true)},
		{name: "mixed case", value: " TRUE ", want: boolPtr(true)},
		{name: "false", value: "false", want: boolPtr(false)},
		{name: "unrecognized is false", value: "maybe", want: boolPtr(false)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ImportOptionsRequest{RejectInvalidDates: tc.value}.ResolveRejectInvalidDates()
			switch {
			case tc.want == nil && got != nil:
				t.Fatalf("expected nil, got %v", *got)
			case tc.want != nil && got == nil:
				t.Fatalf("expected %v, got nil", *tc.want)
			case tc.want != nil && *got != *tc.want:
				t.Fatalf("expected %v, got %v", *tc.want, *got)
			}
		})
	}
}

func boolPtr(b bool) *bool { return &b }
