package version

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Revision
		wantErr bool
	}{
		{"001.008.007", Revision{1, 8, 7}, false},
		{"2.0.0", Revision{2, 0, 0}, false},
		{"1.8", Revision{}, true},
		{"1.8.7.0", Revision{}, true},
		{"1..7", Revision{}, true},
		{"a.b.c", Revision{}, true},
		{"", Revision{}, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	r, err := Parse("001.008.007")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := r.String(); got != "1.8.7" {
		t.Errorf("String() = %q, want 1.8.7", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.8.7", "1.8.7", 0},
		{"1.8.7", "1.8.8", -1},
		{"1.9.0", "1.8.7", 1},
		{"2.0.0", "1.99.99", 1},
	}

	for _, tt := range tests {
		a, _ := Parse(tt.a)
		b, _ := Parse(tt.b)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAtLeast(t *testing.T) {
	a, _ := Parse("1.8.7")
	b, _ := Parse("1.8.0")
	if !a.AtLeast(b) {
		t.Error("1.8.7 should be at least 1.8.0")
	}
	if b.AtLeast(a) {
		t.Error("1.8.0 should not be at least 1.8.7")
	}
}
