package cli

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/urfave/cli/v3"

	"github.com/foelkdavid/zyfetch/pkg/serializer"
)

const maxFormatSuggestionDistance = 2

// parseOutputFormat extracts and validates the output format from CLI flags.
// When --format is absent the format is inferred from the --output path,
// which keeps bare stdout invocations on the classic text rendering.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	if !cmd.IsSet("format") {
		return serializer.FormatFromPath(cmd.String("output")), nil
	}

	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		valid := strings.Join(serializer.SupportedFormats(), ", ")
		if suggestion := closestFormat(string(outFormat)); suggestion != "" {
			return "", fmt.Errorf("unknown output format: %q (did you mean %q?), valid formats are: %s", outFormat, suggestion, valid)
		}
		return "", fmt.Errorf("unknown output format: %q, valid formats are: %s", outFormat, valid)
	}
	return outFormat, nil
}

// closestFormat returns the supported format closest to name, or the
// empty string when nothing is near enough to suggest.
func closestFormat(name string) string {
	best := ""
	bestDistance := maxFormatSuggestionDistance + 1

	for _, candidate := range serializer.SupportedFormats() {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}

	return best
}
