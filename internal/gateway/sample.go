package gateway

import (
	_ "embed"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/aladinbajra/youtube-trending-ai/internal/model"
)

// sampleCorpus is the bundled static dataset, the same shape as the live
// /api/videos payload. It backs sample mode and the live-failure fallback.
//
//go:embed data/videos.json
var sampleCorpus []byte

// loadSample parses the sample corpus. A configured override path wins over
// the embedded file; if it cannot be read the embedded corpus is used.
func (g *Gateway) loadSample() ([]model.Video, error) {
	data := sampleCorpus
	if g.samplePath != "" {
		b, err := os.ReadFile(g.samplePath)
		if err != nil {
			g.log.Warn().Err(err).Str("path", g.samplePath).
				Msg("sample override unreadable, using embedded corpus")
		} else {
			data = b
		}
	}

	var videos []model.Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, fmt.Errorf("decode sample corpus: %w", err)
	}
	return videos, nil
}
