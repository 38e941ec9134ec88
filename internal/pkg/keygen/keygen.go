// Package keygen produces the structurally self-validating session codes.
//
// A raw code is 32 alphanumeric characters. Positions 0, 4 and 16 hold
// decimal digits whose sum is always 15; the remaining 29 positions are
// drawn uniformly from the alphabet using crypto/rand. The wire form
// groups the raw code into 8 dash-separated blocks of 4 (39 characters),
// which shifts the checksum digits to formatted offsets 0, 5 and 20.
package keygen

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

const (
	alphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	rawLength    = 32
	blockSize    = 4
	checksumSum  = 15
	FormattedLen = 39
)

// raw positions of the checksum digits
var digitPositions = [3]int{0, 4, 16}

// formatted positions after dash insertion
var formattedDigitPositions = [3]int{0, 5, 20}

var codePattern = regexp.MustCompile(
	`^\d[A-Za-z0-9]{3}-\d[A-Za-z0-9]{3}-[A-Za-z0-9]{4}-[A-Za-z0-9]{4}-\d[A-Za-z0-9]{3}-[A-Za-z0-9]{4}-[A-Za-z0-9]{4}-[A-Za-z0-9]{4}$`)

// NewSessionKey returns a freshly generated, formatted session code.
func NewSessionKey() (string, error) {
	digits, err := checksumDigits()
	if err != nil {
		return "", err
	}

	raw := make([]byte, rawLength)
	for i := range raw {
		n, err := randInt(len(alphabet))
		if err != nil {
			return "", err
		}
		raw[i] = alphabet[n]
	}
	raw[digitPositions[0]] = '0' + byte(digits[0])
	raw[digitPositions[1]] = '0' + byte(digits[1])
	raw[digitPositions[2]] = '0' + byte(digits[2])

	return format(raw), nil
}

// IsValidSessionKey reports whether code matches the structural grammar
// and its three checksum digits sum to 15.
func IsValidSessionKey(code string) bool {
	if len(code) != FormattedLen || !codePattern.MatchString(code) {
		return false
	}
	sum := 0
	for _, pos := range formattedDigitPositions {
		sum += int(code[pos] - '0')
	}
	return sum == checksumSum
}

// checksumDigits picks d0 and d1 uniformly from 0-8 and derives the
// third so the triple sums to 15, retrying while the derived digit
// falls outside 0-9.
func checksumDigits() ([3]int, error) {
	for {
		d0, err := randInt(9)
		if err != nil {
			return [3]int{}, err
		}
		d1, err := randInt(9)
		if err != nil {
			return [3]int{}, err
		}
		d2 := checksumSum - d0 - d1
		if d2 >= 0 && d2 <= 9 {
			return [3]int{d0, d1, d2}, nil
		}
	}
}

func format(raw []byte) string {
	var b strings.Builder
	b.Grow(FormattedLen)
	for i := 0; i < rawLength; i += blockSize {
		if i > 0 {
			b.WriteByte('-')
		}
		b.Write(raw[i : i+blockSize])
	}
	return b.String()
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
