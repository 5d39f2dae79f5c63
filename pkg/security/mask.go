package security

// MaskSSN replaces every digit except the final four with '*', leaving
// punctuation intact: "123-45-6789" becomes "***-**-6789". Inputs with
// four or fewer digits are returned unchanged.
func MaskSSN(ssn string) string {
	digits := 0
	for _, r := range ssn {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits <= 4 {
		return ssn
	}

	toMask := digits - 4
	out := []rune(ssn)
	for i, r := range out {
		if toMask == 0 {
			break
		}
		if r >= '0' && r <= '9' {
			out[i] = '*'
			toMask--
		}
	}
	return string(out)
}
