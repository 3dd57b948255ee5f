package apperr

import (
	"fmt"
	"testing"
)

func TestKindHelpers(t *testing.T) {
	v := Validationf("price of offer must be a non-null integer >= 0, id = %s", "x")
	if !IsValidation(v) || IsNotFound(v) {
		t.Fatalf("validation error misclassified: %v", v)
	}

	nf := NotFound("3fa85f64-5717-4562-b3fc-2c963f66a001")
	if !IsNotFound(nf) || IsValidation(nf) {
		t.Fatalf("not-found error misclassified: %v", nf)
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("import failed: %w", Validationf("duplicate id in import batch, id = %s", "x"))
	if !IsValidation(wrapped) {
		t.Fatalf("wrapped validation error not detected: %v", wrapped)
	}
	if IsValidation(fmt.Errorf("plain")) || IsNotFound(nil) {
		t.Fatalf("plain errors misclassified")
	}
}
