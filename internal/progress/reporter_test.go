package progress

import (
	"bytes"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}

	r.Start(2, "Resizing")
	r.Update(1, "robe-1.jpg")
	r.Update(2, "robe-2.jpg")
	r.Finish()

	want := "Resizing: 2 images\n[1/2] robe-1.jpg\n[2/2] robe-2.jpg\nResizing: done\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected a CIReporter when CI is set")
	}
}
