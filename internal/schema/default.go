package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Default-value literals use the GVariant text notation the schema format
// inherits: bare true/false and numbers, single- or double-quoted strings,
// and bracketed arrays of quoted strings. The decoded value is embedded in
// generated documentation and registered as the store default; the
// generated getter itself always queries the live store.

// DecodeDefault parses a default literal according to the descriptor. For
// choice descriptors the literal must decode to one of the declared
// choices. The key name is only used for error reporting.
func DecodeDefault(keyName, literal string, desc TypeDescriptor) (any, error) {
	if desc.IsChoice() {
		raw, err := decodeString(keyName, literal)
		if err != nil {
			return nil, err
		}
		for _, choice := range desc.Choices {
			if raw == choice {
				return raw, nil
			}
		}
		return nil, errf(KindInvalidDefault, keyName, "default", "%q is not a declared choice", raw)
	}

	if desc.Array {
		return decodeStringArray(keyName, literal)
	}

	switch desc.Kind {
	case KindBool:
		switch literal {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, errf(KindInvalidDefault, keyName, "default", "%q is not a boolean literal", literal)
	case KindString:
		return decodeString(keyName, literal)
	case KindInt32:
		v, err := strconv.ParseInt(literal, 10, 32)
		if err != nil {
			return nil, errf(KindInvalidDefault, keyName, "default", "%q is not an int32 literal", literal)
		}
		return int32(v), nil
	case KindUint32:
		v, err := strconv.ParseUint(literal, 10, 32)
		if err != nil {
			return nil, errf(KindInvalidDefault, keyName, "default", "%q is not a uint32 literal", literal)
		}
		return uint32(v), nil
	case KindInt64:
		v, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return nil, errf(KindInvalidDefault, keyName, "default", "%q is not an int64 literal", literal)
		}
		return v, nil
	case KindUint64:
		v, err := strconv.ParseUint(literal, 10, 64)
		if err != nil {
			return nil, errf(KindInvalidDefault, keyName, "default", "%q is not a uint64 literal", literal)
		}
		return v, nil
	case KindFloat64:
		v, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, errf(KindInvalidDefault, keyName, "default", "%q is not a float literal", literal)
		}
		return v, nil
	}

	return nil, errf(KindInvalidDefault, keyName, "default", "unhandled descriptor")
}

// EncodeDefault renders a decoded default back to its store-native textual
// form. Decoding then encoding a well-formed literal is idempotent.
func EncodeDefault(value any, desc TypeDescriptor) string {
	if desc.Array {
		elems, _ := value.([]string)
		quoted := make([]string, len(elems))
		for i, elem := range elems {
			quoted[i] = quoteString(elem)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	}

	switch v := value.(type) {
	case bool:
		return strconv.FormatBool(v)
	case string:
		return quoteString(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", value)
}

// decodeString parses a quoted string literal. Both quote styles are
// accepted; backslash escapes the quote character and itself.
func decodeString(keyName, literal string) (string, error) {
	if len(literal) < 2 {
		return "", errf(KindInvalidDefault, keyName, "default", "%q is not a quoted string", literal)
	}
	quote := literal[0]
	if (quote != '\'' && quote != '"') || literal[len(literal)-1] != quote {
		return "", errf(KindInvalidDefault, keyName, "default", "%q is not a quoted string", literal)
	}

	body := literal[1 : len(literal)-1]
	var out strings.Builder
	escaped := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case escaped:
			out.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == quote:
			return "", errf(KindInvalidDefault, keyName, "default", "unescaped quote in %q", literal)
		default:
			out.WriteByte(c)
		}
	}
	if escaped {
		return "", errf(KindInvalidDefault, keyName, "default", "dangling escape in %q", literal)
	}
	return out.String(), nil
}

// decodeStringArray parses a bracketed, comma-separated list of quoted
// strings, e.g. ['a', 'b'] or [].
func decodeStringArray(keyName, literal string) ([]string, error) {
	if len(literal) < 2 || literal[0] != '[' || literal[len(literal)-1] != ']' {
		return nil, errf(KindInvalidDefault, keyName, "default", "%q is not an array literal", literal)
	}
	body := strings.TrimSpace(literal[1 : len(literal)-1])
	if body == "" {
		return []string{}, nil
	}

	var out []string
	for len(body) > 0 {
		quote := body[0]
		if quote != '\'' && quote != '"' {
			return nil, errf(KindInvalidDefault, keyName, "default", "array elements must be quoted strings")
		}
		end := -1
		escaped := false
		for i := 1; i < len(body); i++ {
			c := body[i]
			if escaped {
				escaped = false
				continue
			}
			if c == '\\' {
				escaped = true
				continue
			}
			if c == quote {
				end = i
				break
			}
		}
		if end < 0 {
			return nil, errf(KindInvalidDefault, keyName, "default", "unterminated string in array literal")
		}
		elem, err := decodeString(keyName, body[:end+1])
		if err != nil {
			return nil, err
		}
		out = append(out, elem)

		body = strings.TrimSpace(body[end+1:])
		if body == "" {
			break
		}
		if body[0] != ',' {
			return nil, errf(KindInvalidDefault, keyName, "default", "expected comma between array elements")
		}
		body = strings.TrimSpace(body[1:])
		if body == "" {
			return nil, errf(KindInvalidDefault, keyName, "default", "trailing comma in array literal")
		}
	}
	return out, nil
}

// quoteString renders a string in GVariant single-quote notation.
func quoteString(s string) string {
	var out strings.Builder
	out.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\'' || c == '\\' {
			out.WriteByte('\\')
		}
		out.WriteByte(c)
	}
	out.WriteByte('\'')
	return out.String()
}
