// Package jsonfile provides a file-backed implementation of the deck store
// defined in internal/store. A deck is a single UTF-8 JSON document of the
// form {"cards": [...]}, read and written as a whole.
package jsonfile
