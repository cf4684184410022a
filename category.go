package readlog

import (
	"strings"
	"unicode"
)

// BookWordThreshold is the word count above which content is logged as a book.
const BookWordThreshold = 20000

// Category is the reading log a piece of content belongs to.
type Category string

// Category constants.
const (
	Article Category = "article"
	Book    Category = "book"
)

// Subdir returns the name of the optional per-category directory inside a
// year directory ("articles" or "books").
func (c Category) Subdir() string {
	if c == Book {
		return "books"
	}
	return "articles"
}

// ParseCategory converts user input into a Category.
// Returns EINVALID for anything other than "article" or "book".
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case Article:
		return Article, nil
	case Book:
		return Book, nil
	}
	return "", Errorf(EINVALID, "invalid content type %q: must be article or book", s)
}

// Classify derives the category from a word count. Anything strictly above
// BookWordThreshold is a book.
func Classify(wordCount int) Category {
	if wordCount > BookWordThreshold {
		return Book
	}
	return Article
}

// CountWords counts maximal runs of word characters (letters, numbers and
// underscore) in text.
func CountWords(text string) int {
	return len(strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	}))
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
