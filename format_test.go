package pdfium

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		f        Format
		wantBPP  int
		wantName string
	}{
		{FormatGray, 1, "Gray"},
		{FormatBGR, 3, "BGR"},
		{FormatBGRx, 4, "BGRx"},
		{FormatBGRA, 4, "BGRA"},
		{FormatBGRAPremul, 4, "BGRA-premultiplied"},
		{Format(0), 0, "unknown"},
		{Format(99), 0, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			if got := tt.f.BytesPerPixel(); got != tt.wantBPP {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.wantBPP)
			}
			if got := tt.f.String(); got != tt.wantName {
				t.Errorf("String() = %q, want %q", got, tt.wantName)
			}
		})
	}
}
