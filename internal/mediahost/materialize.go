package mediahost

import (
	"context"
	"regexp"

	"github.com/rs/zerolog/log"
)

var dataImagePattern = regexp.MustCompile(`^data:image/`)

// Materialize runs the best-effort photo transform: inline image data URIs
// are uploaded to the media host and replaced with the hosted URL; any
// other entry passes through unchanged. Upload failures keep the original
// string, never abort the request. A nil uploader (no credential
// configured) passes everything through.
func Materialize(ctx context.Context, up Uploader, photos []string) []string {
	out := make([]string, 0, len(photos))
	for _, p := range photos {
		if up != nil && dataImagePattern.MatchString(p) {
			hosted, err := up.Upload(ctx, p)
			if err != nil {
				log.Warn().Err(err).Msg("photo upload failed, keeping inline data")
				out = append(out, p)
				continue
			}
			out = append(out, hosted)
			continue
		}
		out = append(out, p)
	}
	return out
}
