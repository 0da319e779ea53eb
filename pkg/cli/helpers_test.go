package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/foelkdavid/zyfetch/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		want        serializer.Format
		wantError   bool
		errContains string
	}{
		{
			name: "defaults to text",
			args: []string{"test"},
			want: serializer.FormatText,
		},
		{
			name: "explicit json",
			args: []string{"test", "--format", "json"},
			want: serializer.FormatJSON,
		},
		{
			name: "explicit table",
			args: []string{"test", "--format", "table"},
			want: serializer.FormatTable,
		},
		{
			name: "inferred from json output path",
			args: []string{"test", "--output", "report.json"},
			want: serializer.FormatJSON,
		},
		{
			name: "inferred from yml output path",
			args: []string{"test", "--output", "report.yml"},
			want: serializer.FormatYAML,
		},
		{
			name: "unknown extension stays text",
			args: []string{"test", "--output", "report.txt"},
			want: serializer.FormatText,
		},
		{
			name: "explicit format beats path inference",
			args: []string{"test", "--format", "yaml", "--output", "report.json"},
			want: serializer.FormatYAML,
		},
		{
			name:        "typo gets a suggestion",
			args:        []string{"test", "--format", "jsn"},
			wantError:   true,
			errContains: `did you mean "json"`,
		},
		{
			name:        "garbage gets no suggestion",
			args:        []string{"test", "--format", "zzzzz"},
			wantError:   true,
			errContains: "valid formats are",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got serializer.Format
			var gotErr error

			testCmd := &cli.Command{
				Name: "test",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format"},
					&cli.StringFlag{Name: "output"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					got, gotErr = parseOutputFormat(cmd)
					return nil
				},
			}

			if err := testCmd.Run(context.Background(), tt.args); err != nil {
				t.Fatalf("unexpected run error: %v", err)
			}

			if tt.wantError {
				if gotErr == nil {
					t.Fatal("expected error but got nil")
				}
				if !strings.Contains(gotErr.Error(), tt.errContains) {
					t.Errorf("error = %v, want error containing %q", gotErr, tt.errContains)
				}
				return
			}

			if gotErr != nil {
				t.Fatalf("unexpected error: %v", gotErr)
			}
			if got != tt.want {
				t.Errorf("format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClosestFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"jsn", "json"},
		{"yml", "yaml"},
		{"txt", "text"},
		{"tabel", "table"},
		{"zzzzz", ""},
	}

	for _, tt := range tests {
		if got := closestFormat(tt.input); got != tt.want {
			t.Errorf("closestFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
