package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"
)

// GeneradorCodigo produces human-readable order codes. It is injected into
// the order engine so tests can supply deterministic values.
type GeneradorCodigo interface {
	Generar() string
}

type generadorCodigo struct {
	ahora func() time.Time
	rnd   io.Reader
}

// NewGeneradorCodigo builds the default generator. Pass nil for either
// argument to use the UTC clock and crypto/rand.
func NewGeneradorCodigo(ahora func() time.Time, rnd io.Reader) GeneradorCodigo {
	if ahora == nil {
		ahora = func() time.Time { return time.Now().UTC() }
	}
	if rnd == nil {
		rnd = rand.Reader
	}
	return &generadorCodigo{ahora: ahora, rnd: rnd}
}

// Generar returns a code of the form OC-<year>-<6 uppercase hex chars>.
// Collisions are statistically negligible and, when they do happen, surface
// as a uniqueness conflict on the codigo column — never silently resolved.
func (g *generadorCodigo) Generar() string {
	var buf [3]byte
	if _, err := io.ReadFull(g.rnd, buf[:]); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// fall back to the clock so order creation still works.
		nano := g.ahora().UnixNano()
		buf[0], buf[1], buf[2] = byte(nano), byte(nano>>8), byte(nano>>16)
	}
	sufijo := strings.ToUpper(hex.EncodeToString(buf[:]))
	return fmt.Sprintf("OC-%d-%s", g.ahora().Year(), sufijo)
}
