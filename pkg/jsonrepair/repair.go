package jsonrepair

// RepairUnbalanced appends the closing braces and brackets a truncated
// response is missing, in reverse order of how the delimiters were opened, so
// `{"a":[1,2` becomes `{"a":[1,2]}`. Delimiters inside string literals are
// ignored. The input is never shortened; surplus closers are left alone.
// Callers invoke this only after a first parse attempt has failed.
func RepairUnbalanced(text string) string {
	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{', '[':
			stack = append(stack, c)
		case '}':
			if len(stack) > 0 && stack[len(stack)-1] == '{' {
				stack = stack[:len(stack)-1]
			}
		case ']':
			if len(stack) > 0 && stack[len(stack)-1] == '[' {
				stack = stack[:len(stack)-1]
			}
		}
	}

	closers := make([]byte, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			closers = append(closers, '}')
		} else {
			closers = append(closers, ']')
		}
	}
	return text + string(closers)
}
