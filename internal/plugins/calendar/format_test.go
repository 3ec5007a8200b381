package calendar

import "testing"

func TestFormatDateDDMMYYYY(t *testing.T) {
	cases := map[string]string{
		"2024-03-07":          "07.03.2024",
		"2024-12-31 23:59:00": "31.12.2024",
		" 1999-01-02 08:00":   "02.01.1999",
		"2024-03-09T10:00:00": "09.03.2024",
	}
	for in, want := range cases {
		got, err := FormatDateDDMMYYYY(in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: expected %q, got %q", in, want, got)
		}
	}
}

func TestFormatDateDDMMYYYY_Malformed(t *testing.T) {
	for _, in := range []string{"", "07.03.2024", "2024-13-01", "2024/03/07", "yesterday"} {
		if got, err := FormatDateDDMMYYYY(in); err == nil {
			t.Errorf("%q: expected error, got %q", in, got)
		}
	}
}
