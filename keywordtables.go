package simplify

// allKeywords is the complete set of Draft 4/6/7 validation and applicator
// keywords this engine reasons about. Anything outside this set — $id,
// $schema, $ref, title, description, default, examples, and the like — is
// an annotation or structural keyword that carries no validation meaning
// on its own, so it is never pruned by type and never touched by a rule
// that doesn't name it explicitly.
var allKeywords = map[string]bool{
	"additionalItems":      true,
	"additionalProperties":  true,
	"allOf":                true,
	"anyOf":                true,
	"const":                true,
	"contains":             true,
	"contentEncoding":      true,
	"contentMediaType":     true,
	"dependencies":         true,
	"else":                 true,
	"enum":                 true,
	"exclusiveMaximum":     true,
	"exclusiveMinimum":     true,
	"format":               true,
	"if":                   true,
	"items":                true,
	"maxItems":             true,
	"maxLength":            true,
	"maxProperties":        true,
	"maximum":              true,
	"minItems":             true,
	"minLength":            true,
	"minProperties":        true,
	"minimum":              true,
	"multipleOf":           true,
	"not":                  true,
	"oneOf":                true,
	"pattern":              true,
	"patternProperties":    true,
	"properties":           true,
	"propertyNames":        true,
	"required":             true,
	"then":                 true,
	"type":                 true,
	"uniqueItems":          true,
}

// keywordsWithDirectSubschemas names the keywords whose value is itself a
// single schema node (as opposed to a map or array of schema nodes), for
// which the driver must recurse directly into the value.
var keywordsWithDirectSubschemas = map[string]bool{
	"additionalItems":      true,
	"additionalProperties": true,
	"contains":             true,
	"else":                 true,
	"if":                   true,
	"not":                  true,
	"propertyNames":        true,
	"then":                 true,
}

// keywordsWithArraySubschemas names the keywords whose value is an array of
// schema nodes.
var keywordsWithArraySubschemas = map[string]bool{
	"allOf": true,
	"anyOf": true,
	"oneOf": true,
	"items": true,
}

// keywordsWithMapSubschemas names the keywords whose value is an object
// mapping names to schema nodes.
var keywordsWithMapSubschemas = map[string]bool{
	"properties":        true,
	"patternProperties": true,
	"dependencies":      true,
}

// typeApplicableKeywords groups the keywords that are only meaningful for
// instances of a given primitive type, used by the type-pruning rule to
// drop keywords that can never fire given a schema's narrowed "type".
var typeApplicableKeywords = map[PrimitiveType][]string{
	Array: {
		"items", "additionalItems", "maxItems", "minItems", "uniqueItems", "contains",
	},
	Number: {
		"multipleOf", "maximum", "exclusiveMaximum", "minimum", "exclusiveMinimum",
	},
	Integer: {
		"multipleOf", "maximum", "exclusiveMaximum", "minimum", "exclusiveMinimum",
	},
	Object: {
		"properties", "patternProperties", "additionalProperties", "required",
		"propertyNames", "maxProperties", "minProperties", "dependencies",
	},
	String: {
		"maxLength", "minLength", "pattern", "format", "contentEncoding", "contentMediaType",
	},
}

// ignoreIfParentAbsent pairs a keyword with the parent keyword that must be
// present for it to have any effect; if the parent is absent the child is
// dead weight.
var ignoreIfParentAbsent = map[string]string{
	"then":           "if",
	"else":           "if",
	"additionalItems": "items",
}

// neutralKeywordValues lists keywords whose listed value has no filtering
// effect and can always be dropped, regardless of "type".
var neutralKeywordValues = map[string]func(any) bool{
	"additionalProperties": isTrueSchema,
	"additionalItems":      isTrueSchema,
	"uniqueItems":          func(v any) bool { b, ok := v.(bool); return ok && !b },
	"minLength":            isZeroNumber,
	"minItems":             isZeroNumber,
	"minProperties":        isZeroNumber,
	"required":             isEmptyArray,
	"enum":                 func(any) bool { return false },
}

func isZeroNumber(v any) bool {
	r, ok := toRat(v)
	return ok && r.Sign() == 0
}

func isEmptyArray(v any) bool {
	arr, ok := v.([]any)
	return ok && len(arr) == 0
}
