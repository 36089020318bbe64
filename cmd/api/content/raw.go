package content

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	ErrEmptyBody       = errors.New("content: empty response body")
	ErrUnexpectedShape = errors.New("content: unexpected collection shape")
)

// collectionKeys are the envelope keys a collection may be wrapped in.
// "data" is the CMS shape; the others are the local data file shapes.
var collectionKeys = []string{"data", "projects", "posts", "items"}

// FlexString decodes any JSON scalar into a string. Objects, arrays and null
// decode to the empty string, so a loosely typed field never fails decoding.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*s = ""
		return nil
	}
	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
	case '{', '[', 'n':
		*s = ""
	default:
		// numbers and booleans keep their literal text
		*s = FlexString(data)
	}
	return nil
}

func (s FlexString) String() string { return string(s) }

// FlexBool accepts true/false, "true"/"false" and 1/0.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.Trim(bytes.TrimSpace(data), `"`)) {
	case "true", "1":
		*b = true
	default:
		*b = false
	}
	return nil
}

// RawImage is the image relation of a CMS record. The CMS sends either an
// object with a url, a bare string, or (older API versions) a nested
// {data: {attributes: {url}}} wrapper.
type RawImage struct {
	URL string
}

func (i *RawImage) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	i.URL = ""
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		i.URL = str
	case '[':
		var list []RawImage
		if err := json.Unmarshal(data, &list); err != nil {
			return nil
		}
		for _, img := range list {
			if img.URL != "" {
				i.URL = img.URL
				break
			}
		}
	case '{':
		var obj struct {
			URL        FlexString      `json:"url"`
			Data       json.RawMessage `json:"data"`
			Attributes json.RawMessage `json:"attributes"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil
		}
		i.URL = obj.URL.String()
		for _, nested := range []json.RawMessage{obj.Data, obj.Attributes} {
			if i.URL != "" || len(nested) == 0 {
				continue
			}
			var inner RawImage
			if err := json.Unmarshal(nested, &inner); err == nil {
				i.URL = inner.URL
			}
		}
	}
	return nil
}

// RawItem is a single record as received from the CMS, before normalization.
// Every field is optional.
type RawItem struct {
	ID          FlexString `json:"id"`
	DocumentID  FlexString `json:"documentId"`
	Title       FlexString `json:"title"`
	Slug        FlexString `json:"slug"`
	Description FlexString `json:"description"`
	Excerpt     FlexString `json:"excerpt"`
	Body        FlexString `json:"body"`
	Author      FlexString `json:"author"`
	Image       *RawImage  `json:"image"`
	URL         FlexString `json:"url"`
	Date        FlexString `json:"date"`
	PublishedAt FlexString `json:"publishedAt"`
	Category    FlexString `json:"category"`
	Featured    FlexBool   `json:"featured"`
}

// UnmarshalJSON flattens the {id, attributes: {...}} record layout of older
// CMS versions into the flat layout.
func (r *RawItem) UnmarshalJSON(data []byte) error {
	type plain RawItem
	var aux struct {
		plain
		Attributes json.RawMessage `json:"attributes"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = RawItem(aux.plain)

	attrs := bytes.TrimSpace(aux.Attributes)
	if len(attrs) == 0 || attrs[0] != '{' {
		return nil
	}
	var inner plain
	if err := json.Unmarshal(attrs, &inner); err != nil {
		return nil
	}
	id := r.ID
	*r = RawItem(inner)
	if r.ID == "" {
		r.ID = id
	}
	return nil
}

// DecodeCollection parses a response body into raw items. It accepts the CMS
// envelope ({"data": [...]} or {"data": {...}} for a single record), a bare
// array, and the {"projects": [...]} / {"posts": [...]} local data shapes.
// Array elements that are not JSON objects are skipped.
func DecodeCollection(body []byte) ([]RawItem, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, ErrEmptyBody
	}

	switch trimmed[0] {
	case '[':
		return decodeElements(trimmed)
	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, err
		}
		for _, key := range collectionKeys {
			if v, ok := envelope[key]; ok {
				return decodeElements(v)
			}
		}
		return nil, ErrUnexpectedShape
	default:
		return nil, ErrUnexpectedShape
	}
}

func decodeElements(data json.RawMessage) ([]RawItem, error) {
	data = bytes.TrimSpace(data)
	items := []RawItem{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return items, nil
	}

	switch data[0] {
	case '{':
		var item RawItem
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, err
		}
		return append(items, item), nil
	case '[':
		var elements []json.RawMessage
		if err := json.Unmarshal(data, &elements); err != nil {
			return nil, err
		}
		for _, el := range elements {
			el = bytes.TrimSpace(el)
			if len(el) == 0 || el[0] != '{' {
				continue
			}
			var item RawItem
			if err := json.Unmarshal(el, &item); err != nil {
				continue
			}
			items = append(items, item)
		}
		return items, nil
	default:
		return nil, ErrUnexpectedShape
	}
}
