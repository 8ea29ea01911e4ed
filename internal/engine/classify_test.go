package engine

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		filename string
		want     Kind
	}{
		{"report.pdf", KindPDF},
		{"REPORT.PDF", KindPDF},
		{"scan.png", KindImage},
		{"photo.jpg", KindImage},
		{"photo.JPEG", KindImage},
		{"notes.txt", KindPlainText},
		{"archive.zip", KindUnsupported},
		{"presentation.pptx", KindUnsupported},
		{"noextension", KindUnsupported},
		{"", KindUnsupported},
		{"weird.pdf.exe", KindUnsupported},
		{"dir/inner/report.pdf", KindPDF},
	}

	for _, tt := range tests {
		if got := Classify(tt.filename); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	// Same input must always yield the same category.
	for i := 0; i < 3; i++ {
		if got := Classify("invoice_tamil.pdf"); got != KindPDF {
			t.Fatalf("Classify run %d = %q, want %q", i, got, KindPDF)
		}
	}
}

func TestSupported(t *testing.T) {
	if !Supported("a.txt") {
		t.Error("Supported(a.txt) = false, want true")
	}
	if Supported("a.docx") {
		t.Error("Supported(a.docx) = true, want false")
	}
}
