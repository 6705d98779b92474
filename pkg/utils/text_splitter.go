package utils

// SplitText cuts a document into rune-based chunks of roughly chunkSize,
// with overlap runes shared between neighbours so context survives the
// boundary. Splitting on runes keeps multibyte text intact; no attempt is
// made to break on word boundaries.
func SplitText(text string, chunkSize int, overlap int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	totalLen := len(runes)

	step := chunkSize - overlap
	if step <= 0 {
		// Overlap at or above chunkSize would never advance
		step = chunkSize
	}

	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}
