package generator

import (
	"strings"

	"github.com/google/uuid"

	"unitgen/internal/model"
)

// fingerprintSpace namespaces schema fingerprints.
var fingerprintSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("unitgen/schema"))

// Fingerprint returns a name-based UUID of the normalized schema. Factors are
// hashed by value, so "0.5" and "1.0 / 2.0" produce the same fingerprint.
func Fingerprint(s *model.Schema) uuid.UUID {
	var b strings.Builder
	b.WriteString("package " + s.Package + "\n")
	for _, q := range s.Quantities {
		b.WriteString("quantity " + q.Name + " base " + q.Base + " symbol " + q.Symbol + "\n")
		for _, u := range q.Units {
			b.WriteString("  " + u.Name + " " + goFloat(u.Factor) + "\n")
		}
	}
	for _, d := range s.Derivations {
		b.WriteString("rule " + d.String() + "\n")
	}
	return uuid.NewSHA1(fingerprintSpace, []byte(b.String()))
}
