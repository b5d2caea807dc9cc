package service

import "testing"

func TestOutputFormatResolver_Determine(t *testing.T) {
	r := NewOutputFormatResolver()

	format, ext, err := r.Determine(false, false, false)
	if err != nil || format != "text" || ext != "" {
		t.Fatalf("expected text/no-ext default, got %q %q %v", format, ext, err)
	}

	format, ext, err = r.Determine(true, false, false)
	if err != nil || format != "json" || ext != "json" {
		t.Fatalf("expected json, got %q %q %v", format, ext, err)
	}

	format, ext, err = r.Determine(false, true, false)
	if err != nil || format != "yaml" || ext != "yaml" {
		t.Fatalf("expected yaml, got %q %q %v", format, ext, err)
	}

	format, ext, err = r.Determine(false, false, true)
	if err != nil || format != "dot" || ext != "dot" {
		t.Fatalf("expected dot, got %q %q %v", format, ext, err)
	}
}

func TestOutputFormatResolver_RejectsMultipleFlags(t *testing.T) {
	r := NewOutputFormatResolver()
	if _, _, err := r.Determine(true, true, false); err == nil {
		t.Fatal("expected an error when more than one format flag is set")
	}
}
