package encode

import (
	"bytes"

	"github.com/Cerber-Ursi/uneval/value"
)

func MustString(node *value.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
