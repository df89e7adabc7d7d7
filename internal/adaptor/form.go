package adaptor

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/form/v4"
)

var formDecoder = newFormDecoder()

func newFormDecoder() *form.Decoder {
	decoder := form.NewDecoder()
	decoder.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		return isChecked(vals[0]), nil
	}, false)
	return decoder
}

// isChecked reports whether a checkbox value means "on". Browsers send the
// input's value attribute, which varies between form libraries.
func isChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}

// decodeForm fills dst from the url-encoded request body. Query string
// parameters are ignored.
func decodeForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}
	if err := formDecoder.Decode(dst, r.PostForm); err != nil {
		return fmt.Errorf("decode form: %w", err)
	}
	return nil
}
