package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrorEntry is one level of an error chain as shown to the user.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// messager matches errors that report their own message without the chain,
// such as *zerr.Error.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

// collectErrorEntries walks err from the outside in. Levels with an empty
// message only carry metadata; it is attached to the next level with a message.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	pending := map[string]any{}

	for current := err; current != nil; current = errors.Unwrap(current) {
		if md, ok := current.(metadataer); ok {
			maps.Copy(pending, md.Metadata())
		}

		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: takeMetadata(pending)})
			return entries
		}

		if msg := m.Message(); msg != "" {
			entries = append(entries, ErrorEntry{Message: msg, Metadata: takeMetadata(pending)})
			pending = map[string]any{}
		}
	}

	if len(pending) > 0 && len(entries) > 0 {
		last := &entries[len(entries)-1]
		if last.Metadata == nil {
			last.Metadata = map[string]any{}
		}
		maps.Copy(last.Metadata, pending)
	}

	return entries
}

func takeMetadata(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return m
}

// formatErrorEntries renders entries as "Error: …" followed by a "Caused by:" list.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		head, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
