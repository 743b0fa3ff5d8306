package ldharvest

import "strings"

// Enrich derives convenience fields for records with known content shapes.
// Step-by-step instructions gain _step_content, the step texts joined with
// single spaces. Source-code records with a text body gain _code_content,
// the body with literal two-character \n sequences expanded to real line
// breaks. Existing fields are never modified; records without the relevant
// shape are left untouched.
func Enrich(rec Record) {
	if steps, ok := rec["step"].([]any); ok {
		var texts []string
		for _, s := range steps {
			m, ok := s.(map[string]any)
			if !ok {
				continue
			}
			if text, ok := m["text"].(string); ok && text != "" {
				texts = append(texts, text)
			}
		}
		if len(texts) > 0 {
			rec["_step_content"] = strings.Join(texts, " ")
		}
	}

	if rec.HasType("SoftwareSourceCode") {
		if text, ok := rec["text"].(string); ok && text != "" {
			rec["_code_content"] = strings.ReplaceAll(text, `\n`, "\n")
		}
	}
}
