package entity

import "testing"

func TestRect_Edges(t *testing.T) {
	tests := []struct {
		name   string
		rect   Rect
		left   uint16
		top    uint16
		right  uint16
		bottom uint16
	}{
		{
			name:   "origin rect",
			rect:   NewRect(0, 0, 180, 80),
			left:   0,
			top:    0,
			right:  180,
			bottom: 80,
		},
		{
			name:   "offset rect",
			rect:   NewRect(91, 40, 89, 40),
			left:   91,
			top:    40,
			right:  180,
			bottom: 80,
		},
		{
			name: "empty rect",
			rect: Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Left(); got != tt.left {
				t.Errorf("Left() = %d, want %d", got, tt.left)
			}
			if got := tt.rect.Top(); got != tt.top {
				t.Errorf("Top() = %d, want %d", got, tt.top)
			}
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
		})
	}
}

func TestRect_IsZero(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{name: "zero value", rect: Rect{}, want: true},
		{name: "no width", rect: NewRect(3, 4, 0, 10), want: true},
		{name: "no height", rect: NewRect(3, 4, 10, 0), want: true},
		{name: "one cell", rect: NewRect(0, 0, 1, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewID_IsZero(t *testing.T) {
	if !ViewID(0).IsZero() {
		t.Error("zero ViewID should be invalid")
	}
	if ViewID(1<<32 | 1).IsZero() {
		t.Error("minted ViewID should be valid")
	}
	if !TabID(0).IsZero() {
		t.Error("zero TabID should be invalid")
	}
	if TabID(1).IsZero() {
		t.Error("minted TabID should be valid")
	}
}

func TestNewView(t *testing.T) {
	v := NewView("doc-1", "main.go")
	if v.Doc != "doc-1" {
		t.Errorf("Doc = %q, want %q", v.Doc, "doc-1")
	}
	if v.Name != "main.go" {
		t.Errorf("Name = %q, want %q", v.Name, "main.go")
	}
	if !v.ID.IsZero() {
		t.Error("a view outside a layout tree has no handle")
	}
}
