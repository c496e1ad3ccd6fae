package outline

import (
	"testing"

	"github.com/dgallion1/docoutline/internal/layout"
)

func TestSelectTitle(t *testing.T) {
	tests := []struct {
		name  string
		lines []layout.LineRecord
		want  string
	}{
		{
			name:  "no page one lines",
			lines: []layout.LineRecord{line("Annual Report", 24, 2)},
			want:  TitleUntitled,
		},
		{
			name:  "empty input",
			lines: nil,
			want:  TitleUntitled,
		},
		{
			name: "largest font wins",
			lines: []layout.LineRecord{
				line("Company Confidential", 10, 1),
				line("Annual Report", 24, 1),
				line("Fiscal Year 2024", 16, 1),
			},
			want: "Annual Report",
		},
		{
			name: "first of equal largest",
			lines: []layout.LineRecord{
				line("Annual Report", 24, 1),
				line("Second Big Line", 24, 1),
			},
			want: "Annual Report",
		},
		{
			name: "strips enumeration prefix",
			lines: []layout.LineRecord{
				line("1. Introduction", 18, 1),
				line("1.1 Background", 14, 1),
			},
			want: "Introduction",
		},
		{
			name: "strips enumeration prefix with no-break space",
			lines: []layout.LineRecord{
				line("2.\u00a0Overview", 18, 1),
			},
			want: "Overview",
		},
		{
			name: "larger font on later page ignored",
			lines: []layout.LineRecord{
				line("Real Title", 18, 1),
				line("Running Header", 30, 2),
			},
			want: "Real Title",
		},
		{
			name: "fallback scan skips unsuitable lines",
			lines: []layout.LineRecord{
				line("ABC", 20, 1),
				line("Page 1", 10, 1),
				line("12345678", 10, 1),
				line("Chapter One", 10, 1),
				line("Quarterly Summary", 10, 1),
			},
			want: "Quarterly Summary",
		},
		{
			name: "fallback scan finds nothing",
			lines: []layout.LineRecord{
				line("ABC", 20, 1),
				line("xyz", 10, 1),
			},
			want: TitleUntitled,
		},
		{
			name: "fallback scan limited to first ten lines",
			lines: []layout.LineRecord{
				line("ABC", 20, 1),
				line("abcd", 10, 1), line("abcd", 10, 1), line("abcd", 10, 1),
				line("abcd", 10, 1), line("abcd", 10, 1), line("abcd", 10, 1),
				line("abcd", 10, 1), line("abcd", 10, 1), line("abcd", 10, 1),
				line("Long Enough Title", 10, 1),
			},
			want: TitleUntitled,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SelectTitle(tc.lines); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
