package xmlconv

import (
	"reflect"
	"testing"
)

func TestInferScalar_Infer(t *testing.T) {
	tests := []struct {
		text        string
		leadingZero bool
		want        JSONValue
	}{
		{"0.0", false, float64(0)},
		{"0", false, int64(0)},
		{"0000", false, int64(0)},
		{"0", true, int64(0)},
		{"0000", true, "0000"},
		{"0.4200", false, float64(0.42)},
		{"142.4200", false, float64(142.42)},
		{"-7", false, int64(-7)},
		{"-7", true, int64(-7)},
		{"12345", false, int64(12345)},
		{"12345.0", false, float64(12345)},
		{"12345.6", false, float64(12345.6)},
		{"1e3", false, float64(1000)},
		{"0xAC", true, "0xAC"},
		{"0x03", true, "0x03"},
		{"142,4200", true, "142,4200"},
		{"142,420,0", true, "142,420,0"},
		{"0Test", true, "0Test"},
		{"0.Test", true, "0.Test"},
		{"0.22Test", true, "0.22Test"},
		{"0044951", true, "0044951"},
		{"1", true, int64(1)},
		{"false", false, false},
		{"true", true, true},
		{"True", true, "True"},
		{"", false, ""},
		{"some text", false, "some text"},
		// surrounding whitespace is the parser's concern; inference is verbatim
		{" 7 ", false, " 7 "},
		{"NaN", false, "NaN"},
		{"Inf", false, "Inf"},
	}

	for _, tt := range tests {
		cfg := NewConfig()
		cfg.LeadingZeroAsString = tt.leadingZero
		got := inferScalar(tt.text, InferType(), cfg)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("inferScalar(%q, Infer, leadingZero=%v) = %v (%T), want %v (%T)",
				tt.text, tt.leadingZero, got, got, tt.want, tt.want)
		}
	}
}

func TestInferScalar_Deterministic(t *testing.T) {
	cfg := NewConfig()
	cfg.LeadingZeroAsString = true

	for _, text := range []string{"0042", "42", "4.2", "true", "abc"} {
		first := inferScalar(text, InferType(), cfg)
		for i := 0; i < 3; i++ {
			if got := inferScalar(text, InferType(), cfg); !reflect.DeepEqual(got, first) {
				t.Errorf("inferScalar(%q) is not deterministic: %v then %v", text, first, got)
			}
		}
	}
}

func TestInferScalar_Bool(t *testing.T) {
	policy := BoolType("true", "True", "1")
	cfg := NewConfig()

	tests := []struct {
		text string
		want bool
	}{
		{"true", true},
		{"True", true},
		{"1", true},
		{"TRUE", false},
		{"false", false},
		{"0", false},
		{"", false},
		{"yes", false},
	}

	for _, tt := range tests {
		got := inferScalar(tt.text, policy, cfg)
		if got != JSONValue(tt.want) {
			t.Errorf("inferScalar(%q, Bool) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestInferScalar_AlwaysString(t *testing.T) {
	cfg := NewConfig()

	// string out regardless of what the text would otherwise parse as
	for _, text := range []string{"abc", "true", "false", "123", "0123", "0.4200", "-1", " 7 "} {
		got := inferScalar(text, StringType(), cfg)
		if got != JSONValue(text) {
			t.Errorf("inferScalar(%q, AlwaysString) = %v, want the raw text", text, got)
		}
	}

	// idempotent under repeated application to its own output
	out := inferScalar("42", StringType(), cfg).(string)
	if again := inferScalar(out, StringType(), cfg); again != JSONValue(out) {
		t.Errorf("AlwaysString not idempotent: %v then %v", out, again)
	}
}

func TestInferScalar_LeadingZeroLaw(t *testing.T) {
	cfg := NewConfig()
	cfg.LeadingZeroAsString = true

	if got := inferScalar("0001", InferType(), cfg); got != JSONValue("0001") {
		t.Errorf("inferScalar(\"0001\") = %v, want \"0001\"", got)
	}
	if got := inferScalar("0", InferType(), cfg); got != JSONValue(int64(0)) {
		t.Errorf("inferScalar(\"0\") = %v, want 0", got)
	}
}
