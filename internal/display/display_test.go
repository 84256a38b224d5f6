package display

import (
	"testing"

	"github.com/thoreinstein/tunedeck/internal/errors"
)

func TestStatic_PrimaryWorkArea(t *testing.T) {
	tests := []struct {
		name    string
		in      Static
		wantErr bool
	}{
		{name: "full hd", in: Static{Width: 1920, Height: 1080}},
		{name: "offset", in: Static{X: 0, Y: 25, Width: 1440, Height: 875}},
		{name: "zero width", in: Static{Width: 0, Height: 1080}, wantErr: true},
		{name: "negative height", in: Static{Width: 800, Height: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.PrimaryWorkArea()
			if (err != nil) != tt.wantErr {
				t.Fatalf("PrimaryWorkArea() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWorkArea) {
					t.Errorf("expected ErrInvalidWorkArea, got %v", err)
				}
				return
			}
			if got != Rectangle(tt.in) {
				t.Errorf("PrimaryWorkArea() = %+v, want %+v", got, tt.in)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	got, err := Default().PrimaryWorkArea()
	if err != nil {
		t.Fatalf("Default().PrimaryWorkArea() error = %v", err)
	}
	if got.Width != DefaultWidth || got.Height != DefaultHeight {
		t.Errorf("Default() = %+v", got)
	}
}

func TestProviderFunc(t *testing.T) {
	calls := 0
	p := ProviderFunc(func() (Rectangle, error) {
		calls++
		return Rectangle{Width: 2560, Height: 1400}, nil
	})

	got, err := p.PrimaryWorkArea()
	if err != nil || got.Width != 2560 || calls != 1 {
		t.Errorf("ProviderFunc: got (%+v, %v), calls=%d", got, err, calls)
	}
}
