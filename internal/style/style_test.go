package style

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "white", want: color.RGBA{255, 255, 255, 255}},
		{in: "Lime", want: color.RGBA{0, 255, 0, 255}},
		{in: "#f80", want: color.RGBA{255, 136, 0, 255}},
		{in: "#00ff7f", want: color.RGBA{0, 255, 127, 255}},
		{in: "#80ffffff", want: color.RGBA{128, 128, 128, 128}},
		{in: "rgb(10, 20, 30)", want: color.RGBA{10, 20, 30, 255}},
		{in: "rgba(0, 0, 0, 96)", want: color.RGBA{0, 0, 0, 96}},
		{in: "rgba(255, 255, 255, 0.5)", want: color.RGBA{128, 128, 128, 128}},
		{in: "rgba(100%, 0%, 0%, 100%)", want: color.RGBA{255, 0, 0, 255}},
		{in: "transparent", want: color.RGBA{}},
		{in: "#12345", wantErr: true},
		{in: "rgb(1,2)", wantErr: true},
		{in: "notacolor", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	s, err := Parse("color: #00ff7f; font-size: 16px; font-weight: bold; background-color: rgba(0, 0, 0, 96); padding: 6px; border: 1px solid red;")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := Style{
		Color:      color.RGBA{0, 255, 127, 255},
		Background: color.RGBA{0, 0, 0, 96},
		FontSize:   16,
		Bold:       true,
		Padding:    6,
	}
	if s != want {
		t.Errorf("Parse() = %+v, want %+v", s, want)
	}
}

func TestParse_Defaults(t *testing.T) {
	s, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") error = %v", err)
	}
	if s != Default {
		t.Errorf("Parse(\"\") = %+v, want Default", s)
	}

	s, err = Parse("font-size: 12pt; font-weight: 400")
	if err != nil {
		t.Fatal(err)
	}
	if s.FontSize != 16 || s.Bold {
		t.Errorf("FontSize = %v, Bold = %v, want 16, false", s.FontSize, s.Bold)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, sheet := range []string{
		"color: nope",
		"font-size: big",
		"font-size: 0px",
		"font-weight: heavy",
		"just text",
	} {
		if _, err := Parse(sheet); err == nil {
			t.Errorf("Parse(%q) should fail", sheet)
		}
	}
}
