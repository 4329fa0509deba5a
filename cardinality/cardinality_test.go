package cardinality

import (
	"errors"
	"testing"

	"github.com/Neumenon/textkit/textkit"
)

func TestParse_WellKnown(t *testing.T) {
	tests := []struct {
		text string
		want Cardinality
	}{
		{"0..0", Zero},
		{"0..1", ZeroOne},
		{"*", ZeroMany},
		{"0..*", ZeroMany},
		{"1..1", OneOne},
		{"1..*", OneMany},
		{"2..5", Cardinality{2, 5}},
		{"10..120", Cardinality{10, 120}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, text := range []string{"", "..", "1..", "..2", "5..2", "01..2", "1..02", "-1..2", "1..2x", "1 ..2", "**"} {
		t.Run(text, func(t *testing.T) {
			if _, err := Parse(text); !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalid", text, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	c, err := New(0, Many)
	if err != nil || c != ZeroMany {
		t.Errorf("New(0, Many) = %v, %v", c, err)
	}
	if _, err := New(-1, 3); !errors.Is(err, ErrInvalid) {
		t.Errorf("New(-1, 3) error = %v", err)
	}
	if _, err := New(4, 3); !errors.Is(err, ErrInvalid) {
		t.Errorf("New(4, 3) error = %v", err)
	}
	if Must(2, 5) != (Cardinality{2, 5}) {
		t.Error("Must(2, 5) mismatch")
	}
}

func TestScan_InContext(t *testing.T) {
	tx := textkit.FromString("items[1..*] rest")
	tx.ConsumeASCII(textkit.Letter)
	tx.MustConsume('[')

	c, err := Scan(tx)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if c != OneMany {
		t.Errorf("Scan = %v", c)
	}
	if !tx.Consume(']') {
		t.Errorf("cursor not after the cardinality: %d", tx.Cursor())
	}
}

func TestScan_RestoresCursor(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"xa..2", ErrNoMatch},
		{"x1.2", ErrNoMatch},
		{"x01..2", ErrInvalid},
		{"x3..1", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tx := textkit.FromString(tt.input)
			tx.Consume('x')
			before := tx.Cursor()
			if _, err := Scan(tx); !errors.Is(err, tt.want) {
				t.Fatalf("Scan error = %v, want %v", err, tt.want)
			}
			if tx.Cursor() != before {
				t.Errorf("cursor = %d, want %d", tx.Cursor(), before)
			}
		})
	}
}

func TestCardinality_Methods(t *testing.T) {
	c := Cardinality{2, 5}
	if c.IsFixed() || !OneOne.IsFixed() {
		t.Error("IsFixed wrong")
	}
	if !c.Allows(2) || !c.Allows(5) || c.Allows(1) || c.Allows(6) {
		t.Error("Allows wrong")
	}
	if !ZeroMany.Allows(1 << 30) {
		t.Error("0..* should allow large counts")
	}
	if c.String() != "2..5" || OneMany.String() != "1..*" {
		t.Errorf("String = %q, %q", c.String(), OneMany.String())
	}

	tx := textkit.NewCompact()
	tx.WritePropertyFunc("card", ZeroMany)
	if tx.String() != "card:0..*;" {
		t.Errorf("WriteText = %q", tx.String())
	}
}
