package highlighter

import (
	"tint/internal/lang"
	"tint/internal/sniff"
)

// DetectFormat resolves a format for a buffer. A filename mapping wins
// outright when one exists; content sniffing is only the fallback, so
// piped input still gets a sensible answer.
func DetectFormat(path string, data []byte) lang.Format {
	return DetectFormatProbe(path, data, sniff.DefaultMaxProbe)
}

func DetectFormatProbe(path string, data []byte, maxProbe int) lang.Format {
	if path != "" {
		if f := lang.FromPath(path); f != lang.Unknown {
			return f
		}
	}
	return sniff.DetectProbe(data, maxProbe)
}
