package users

import "testing"

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@sub.domain.org", "UPPER@EXAMPLE.COM"}
	for _, e := range valid {
		if !validEmail(e) {
			t.Errorf("expected %q to be a valid email", e)
		}
	}

	invalid := []string{"", "not-an-email", "missing@tld", "@no-local.com", "spaces in@mail.com"}
	for _, e := range invalid {
		if validEmail(e) {
			t.Errorf("expected %q to be rejected", e)
		}
	}
}

func TestValidMobile(t *testing.T) {
	valid := []string{"9999999999", "+14155550123", "0650 00 00 00", "(237) 650-000-000"}
	for _, m := range valid {
		if !validMobile(m) {
			t.Errorf("expected %q to be a valid mobile", m)
		}
	}

	invalid := []string{"", "12345", "abc1234567", "9999999999999999999999"}
	for _, m := range invalid {
		if validMobile(m) {
			t.Errorf("expected %q to be rejected", m)
		}
	}
}

func TestValidateSignUpRequiredFields(t *testing.T) {
	base := signUpFixture()

	mutations := map[string]func(*SignUpInput){
		"name":     func(in *SignUpInput) { in.Name = " " },
		"mobile":   func(in *SignUpInput) { in.Mobile = "" },
		"country":  func(in *SignUpInput) { in.Country = "" },
		"city":     func(in *SignUpInput) { in.City = "" },
		"password": func(in *SignUpInput) { in.Password = "" },
	}
	for field, mutate := range mutations {
		in := base
		mutate(&in)
		if err := validateSignUp(in); err == nil {
			t.Errorf("expected missing %s to fail validation", field)
		}
	}

	// Optional fields may all be absent.
	in := base
	in.Email = ""
	in.State = ""
	in.Village = ""
	if err := validateSignUp(in); err != nil {
		t.Errorf("optional fields should not be required: %v", err)
	}
}
