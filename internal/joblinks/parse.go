package joblinks

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrUnusableReply is returned when a completion reply holds no usable links.
var ErrUnusableReply = errors.New("unusable search links reply")

const replySchemaJSON = `{
  "type": "object",
  "required": ["search_links"],
  "properties": {
    "search_links": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["platform", "url"],
        "properties": {
          "platform": {"type": "string", "minLength": 1},
          "url": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

var replySchema = mustSchema(replySchemaJSON)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("joblinks: invalid reply schema: %v", err))
	}
	return schema
}

var codeFence = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

type reply struct {
	SearchLinks []SearchLink `json:"search_links"`
}

// ParseSearchLinks decodes a JSON search_links reply and normalizes it:
// unknown platforms and duplicates are dropped, fixed-URL platforms get
// their constant URL, and links follow the canonical platform order.
func ParseSearchLinks(raw string) ([]SearchLink, error) {
	body := strings.TrimSpace(raw)
	if m := codeFence.FindStringSubmatch(body); m != nil {
		body = m[1]
	}
	if body == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrUnusableReply)
	}

	var doc any
	dec := json.NewDecoder(strings.NewReader(body))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnusableReply, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON object", ErrUnusableReply)
	}

	result, err := replySchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnusableReply, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %v", ErrUnusableReply, errs)
	}

	var r reply
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnusableReply, err)
	}

	links := normalize(r.SearchLinks)
	if len(links) == 0 {
		return nil, fmt.Errorf("%w: no known platforms", ErrUnusableReply)
	}
	return links, nil
}

func normalize(in []SearchLink) []SearchLink {
	canonical := make(map[string]string, len(Platforms))
	for _, p := range Platforms {
		canonical[strings.ToLower(p)] = p
	}

	byPlatform := make(map[string]string, len(Platforms))
	for _, l := range in {
		p, ok := canonical[strings.ToLower(strings.TrimSpace(l.Platform))]
		if !ok {
			continue
		}
		if _, seen := byPlatform[p]; seen {
			continue
		}
		if fixed, ok := fixedURLs[p]; ok {
			byPlatform[p] = fixed
			continue
		}
		u := strings.TrimSpace(l.URL)
		if !isWebURL(u) {
			continue
		}
		byPlatform[p] = u
	}

	out := make([]SearchLink, 0, len(byPlatform))
	for _, p := range Platforms {
		if u, ok := byPlatform[p]; ok {
			out = append(out, SearchLink{Platform: p, URL: u})
		}
	}
	return out
}

func isWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}
