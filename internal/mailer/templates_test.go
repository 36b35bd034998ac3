package mailer

import (
	"strings"
	"testing"
	"time"
)

func TestOTPBody(t *testing.T) {
	t.Parallel()

	body, err := OTPBody("Asha", "Borah", "123456", 2*time.Minute)
	if err != nil {
		t.Fatalf("OTPBody: %v", err)
	}
	for _, want := range []string{"Asha Borah", "123456", "2 minutes"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}
