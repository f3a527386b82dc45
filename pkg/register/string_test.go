package register

import (
	"errors"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		words   []uint16
		byteLen int
		want    string
		absent  bool
	}{
		{
			name:    "plain ascii",
			words:   []uint16{0x5057, 0x5254, 0x4147, 0x0000, 0x0000},
			byteLen: 10,
			want:    "PWRTAG",
		},
		{
			name:    "embedded zero bytes stripped",
			words:   []uint16{0x4142, 0x0000, 0x4344},
			byteLen: 6,
			want:    "ABCD",
		},
		{
			name:    "all zero bytes",
			words:   []uint16{0, 0, 0},
			byteLen: 6,
			absent:  true,
		},
		{
			name:    "odd byte length ignores trailing byte",
			words:   []uint16{0x4142, 0x4300},
			byteLen: 3,
			want:    "ABC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.words, tt.byteLen)
			if err != nil {
				t.Fatalf("String failed: %v", err)
			}
			if tt.absent {
				if got != nil {
					t.Fatalf("got %q, want absent", *got)
				}
				return
			}
			if got == nil {
				t.Fatal("got absent, want value")
			}
			if *got != tt.want {
				t.Errorf("got %q, want %q", *got, tt.want)
			}
		})
	}
}

func TestStringWrongRegisterCount(t *testing.T) {
	// A 4-byte field occupies exactly 2 registers; both directions fail.
	if _, err := String([]uint16{0x4142}, 4); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("short response: got %v, want ErrMalformedResponse", err)
	}
	if _, err := String([]uint16{0x4142, 0x4344, 0x4546}, 4); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("excess response: got %v, want ErrMalformedResponse", err)
	}
}

func TestPutString(t *testing.T) {
	words, err := PutString("AB", 6)
	if err != nil {
		t.Fatalf("PutString failed: %v", err)
	}
	want := []uint16{0x4142, 0x0000, 0x0000}
	if len(words) != len(want) {
		t.Fatalf("got %d words, want %d", len(words), len(want))
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("word %d: got %#x, want %#x", i, words[i], want[i])
		}
	}
}

func TestPutStringOddLength(t *testing.T) {
	words, err := PutString("ABCDE", 5)
	if err != nil {
		t.Fatalf("PutString failed: %v", err)
	}
	want := []uint16{0x4142, 0x4344, 0x4500}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("word %d: got %#x, want %#x", i, words[i], want[i])
		}
	}
}

func TestPutStringTooLong(t *testing.T) {
	_, err := PutString("this name is far too long for the field", 20)
	if !errors.Is(err, ErrStringTooLong) {
		t.Errorf("got %v, want ErrStringTooLong", err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"Linky", "QO-12", "Panel 3 feed"} {
		words, err := PutString(s, 20)
		if err != nil {
			t.Fatalf("PutString(%q) failed: %v", s, err)
		}
		got, err := String(words, 20)
		if err != nil {
			t.Fatalf("String failed: %v", err)
		}
		if got == nil || *got != s {
			t.Errorf("round trip of %q: got %v", s, got)
		}
	}
}
