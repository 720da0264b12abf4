package validation

import (
	"fmt"
	"regexp"
)

// DocumentIDPattern определяет допустимый формат идентификатора документа.
// Буквы, цифры, дефис и нижнее подчеркивание; длина 1-64 символа.
// Под этот формат попадают и UUID, и человекочитаемые слаги.
var DocumentIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// MaxDocumentIDLen максимальная длина идентификатора документа
const MaxDocumentIDLen = 64

// ValidateDocumentID проверяет, что идентификатор документа соответствует
// требованиям. Идентификаторы попадают в ключи хранилища и в URL API,
// поэтому ограничение формата обязательно.
func ValidateDocumentID(id string) error {
	if id == "" {
		return fmt.Errorf("document id cannot be empty")
	}

	if len(id) > MaxDocumentIDLen {
		return fmt.Errorf("document id must not exceed %d characters", MaxDocumentIDLen)
	}

	if !DocumentIDPattern.MatchString(id) {
		return fmt.Errorf("document id can only contain letters, numbers, hyphens and underscores")
	}

	return nil
}
