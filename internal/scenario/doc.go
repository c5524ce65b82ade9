// Package scenario loads, validates and executes scenario files: lists of
// widgets paired with the conversion to apply to each.
//
// Scenario files may be written as JSONC (.json, .jsonc) or YAML
// (.yaml, .yml). JSONC comments are stripped with github.com/tidwall/jsonc
// before decoding with github.com/goccy/go-json; YAML is decoded with
// gopkg.in/yaml.v3. Both formats share the same schema:
//
//	{
//	  // optional display name
//	  "name": "negative narrowing",
//	  "cases": [
//	    {"name": "Widget2", "kind": "special", "type": "Special", "conversion": "narrow"},
//	    {"name": "Widget3", "kind": "widget", "conversion": "narrow"}
//	  ]
//	}
package scenario
