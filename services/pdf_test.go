package services

import (
	"bytes"
	"testing"
)

func TestRenderItineraryPDF(t *testing.T) {
	s := NewSynthesizer(NewPresetStore(), "Mumbai")

	for _, city := range []string{"Mumbai", "Atlantis"} {
		it := s.Synthesize(city)
		data, err := RenderItineraryPDF(it)
		if err != nil {
			t.Fatalf("render %s: %v", city, err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			t.Errorf("render %s: output is not a PDF", city)
		}
		if len(data) < 1000 {
			t.Errorf("render %s: suspiciously small PDF (%d bytes)", city, len(data))
		}
	}
}
