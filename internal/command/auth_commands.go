package command

import (
	"net/mail"
	"net/url"
)

const minPasswordLength = 8

// LoginCommand is a validated login request.
type LoginCommand struct {
	Email    string
	Password string
}

// SignupCommand is a validated signup request.
type SignupCommand struct {
	Email    string
	Password string
}

// RecoverCommand is a validated password recovery request. RedirectTo is
// empty when the caller did not supply one.
type RecoverCommand struct {
	Email      string
	RedirectTo string
}

// ParseLogin validates a login request.
func ParseLogin(email, password string) (LoginCommand, FieldErrors) {
	var errs FieldErrors

	checkEmail(&errs, email)
	if len(password) < minPasswordLength {
		errs.add("password", KindTooShort, "Password must be at least 8 characters.")
	}

	if len(errs) > 0 {
		return LoginCommand{}, errs
	}
	return LoginCommand{Email: email, Password: password}, nil
}

// ParseSignup validates a signup request. The password must be at least 8
// characters and contain at least one letter and one digit.
func ParseSignup(email, password string) (SignupCommand, FieldErrors) {
	var errs FieldErrors

	checkEmail(&errs, email)
	checkSignupPassword(&errs, password)

	if len(errs) > 0 {
		return SignupCommand{}, errs
	}
	return SignupCommand{Email: email, Password: password}, nil
}

// ParseSignupConfirm validates a signup request that carries a confirmation
// password. The confirmation must be byte-for-byte equal, case-sensitive.
func ParseSignupConfirm(email, password, confirmPassword string) (SignupCommand, FieldErrors) {
	var errs FieldErrors

	checkEmail(&errs, email)
	checkSignupPassword(&errs, password)
	if confirmPassword != password {
		errs.add("confirmPassword", KindMismatch, "Passwords do not match.")
	}

	if len(errs) > 0 {
		return SignupCommand{}, errs
	}
	return SignupCommand{Email: email, Password: password}, nil
}

// ParseRecover validates a password recovery request. redirectTo is optional
// but must be an absolute URL when present.
func ParseRecover(email, redirectTo string) (RecoverCommand, FieldErrors) {
	var errs FieldErrors

	checkEmail(&errs, email)
	if redirectTo != "" {
		parsed, err := url.Parse(redirectTo)
		if err != nil || !parsed.IsAbs() || parsed.Host == "" {
			errs.add("redirectTo", KindInvalidFormat, "Redirect URL must be a valid absolute URL.")
		}
	}

	if len(errs) > 0 {
		return RecoverCommand{}, errs
	}
	return RecoverCommand{Email: email, RedirectTo: redirectTo}, nil
}

func checkEmail(errs *FieldErrors, email string) {
	if email == "" {
		errs.add("email", KindRequired, "Email is required.")
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		errs.add("email", KindInvalidFormat, "Email address is invalid.")
	}
}

// CheckPassword validates a new password against the signup strength rules.
// Password resets reuse it so a recovered account cannot end up weaker than
// a fresh one.
func CheckPassword(password string) FieldErrors {
	var errs FieldErrors
	checkSignupPassword(&errs, password)
	return errs
}

func checkSignupPassword(errs *FieldErrors, password string) {
	if len(password) < minPasswordLength {
		errs.add("password", KindTooShort, "Password must be at least 8 characters.")
	}

	hasLetter := false
	hasDigit := false
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}

	if !hasLetter {
		errs.add("password", KindInvalidFormat, "Password must contain a letter.")
	}
	if !hasDigit {
		errs.add("password", KindInvalidFormat, "Password must contain a number.")
	}
}
