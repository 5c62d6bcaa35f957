package formhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/spf13/cast"
	"github.com/starfederation/datastar-go/datastar"
)

const maxMemory = 10 << 20

// submittedValues reads a submission as field → values from a JSON object,
// DataStar signals, or an urlencoded/multipart form.
func submittedValues(r *http.Request) (map[string][]string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch {
	case IsDataStar(r):
		signals := map[string]any{}
		if err := datastar.ReadSignals(r, &signals); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return flatten(signals), nil

	case mediaType == "application/json":
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		body := map[string]any{}
		if err := dec.Decode(&body); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return flatten(body), nil

	case mediaType == "multipart/form-data":
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return r.PostForm, nil

	case mediaType == "application/x-www-form-urlencoded", mediaType == "":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return r.PostForm, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

func flatten(body map[string]any) map[string][]string {
	values := make(map[string][]string, len(body))
	for field, raw := range body {
		switch val := raw.(type) {
		case nil:
			values[field] = nil
		case []any:
			list := make([]string, 0, len(val))
			for _, item := range val {
				list = append(list, toString(item))
			}
			values[field] = list
		default:
			values[field] = []string{toString(val)}
		}
	}
	return values
}

func toString(v any) string {
	if n, ok := v.(json.Number); ok {
		return n.String()
	}
	return cast.ToString(v)
}
