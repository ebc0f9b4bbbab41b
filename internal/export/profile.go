package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/Faultbox/ragingsea/internal/surface"
)

// ProfileRow is one sample of a height profile.
type ProfileRow struct {
	X          float64 `csv:"x"`
	Z          float64 `csv:"z"`
	Time       float32 `csv:"time"`
	Height     float64 `csv:"height"`
	BigWaves   float64 `csv:"big_waves"`
	SmallWaves float64 `csv:"small_waves"`
	Mix        float64 `csv:"mix"`
	Color      string  `csv:"color"`
}

// Profile samples the surface along X at depth z from -extent to +extent.
// At least two samples are taken.
func Profile(s *surface.Surface, p *surface.Params, z, extent float64, samples int) []ProfileRow {
	samples = max(samples, 2)
	rows := make([]ProfileRow, 0, samples)

	for i := 0; i < samples; i++ {
		x := -extent + 2*extent*float64(i)/float64(samples-1)
		sample := s.Sample(p, x, z)
		rows = append(rows, ProfileRow{
			X:          x,
			Z:          z,
			Time:       p.Time,
			Height:     sample.Height,
			BigWaves:   surface.BigWaves(p, x, z),
			SmallWaves: s.SmallWaves(p, x, z),
			Mix:        sample.Mix,
			Color:      sample.Color.Hex(),
		})
	}
	return rows
}

// WriteProfile writes rows as CSV with a header line.
func WriteProfile(w io.Writer, rows []ProfileRow) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}
